package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
)

func newPlanCmd(g *globalFlags) *cobra.Command {
	var opts installFlags
	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir("")
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(appDir)
			if err != nil {
				return err
			}
			selected, err := opts.resolve(cmd, cfg.Install)
			if err != nil {
				return err
			}
			printPlan(cmd, plan.Select(selected))
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func printPlan(cmd *cobra.Command, p plan.Plan) {
	out := cmd.OutOrStdout()
	for i, id := range p.Steps() {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, id)
	}
}
