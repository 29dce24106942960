package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ror-installer/internal/config"
	"github.com/conn-castle/ror-installer/internal/messages"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(g))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   messages.ConfigInitUse,
		Short: messages.ConfigInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir(optionalArg(args, 0))
			if err != nil {
				return err
			}
			path, err := config.WriteDefault(appDir, force)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigInitWroteFmt, path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, messages.ConfigInitForce)
	return cmd
}

func newConfigShowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigShowUse,
		Short: messages.ConfigShowShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir(optionalArg(args, 0))
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(appDir)
			if err != nil {
				return err
			}
			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.Source != "" {
				_, _ = fmt.Fprintf(out, messages.ConfigShowSourceFmt, cfg.Source)
			} else {
				_, _ = fmt.Fprintln(out, messages.ConfigShowDefaults)
			}
			_, _ = out.Write(data)
			return nil
		},
	}
}
