package steps

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
	"github.com/conn-castle/ror-installer/internal/plan"
	"github.com/conn-castle/ror-installer/internal/templates"
)

// Action is what happened to one generated file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionIdentical Action = "identical"
	ActionSkip      Action = "skip"
	ActionForce     Action = "force"
	// ActionUpdate is used for managed blocks merged into an existing file.
	ActionUpdate Action = "update"
)

const (
	filePerm fs.FileMode = 0o644
	dirPerm  fs.FileMode = 0o755
)

// TemplateStep writes every template under Dir into the app directory.
type TemplateStep struct {
	StepID plan.StepID
	Dir    string
	// ManageGitignore maintains the managed block in the app .gitignore.
	ManageGitignore bool
}

// ID returns the step identifier.
func (s TemplateStep) ID() plan.StepID { return s.StepID }

// templateData is the value templates are rendered against.
type templateData struct {
	AppName      string
	ServerBundle string
	Options      plan.Options
}

// Apply renders and writes the step's files in lexical order.
func (s TemplateStep) Apply(ctx context.Context, env Env) error {
	if strings.TrimSpace(env.AppDir) == "" {
		return errors.New(messages.StepsAppDirRequired)
	}
	files, err := templates.StepFiles(s.Dir)
	if err != nil {
		return err
	}
	data := templateData{AppName: env.appName(), ServerBundle: env.ServerBundle, Options: env.Options}
	log := env.Logger.With().Str("step", s.StepID.String()).Logger()

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		content, err := templates.Render(name, data)
		if err != nil {
			return err
		}
		rel := templates.DestPath(name)
		action, err := writeTemplateFile(env, rel, content)
		if err != nil {
			return err
		}
		log.Debug().Str("path", rel).Str("action", string(action)).Msg("template written")
	}

	if s.ManageGitignore {
		block, err := templates.Read(templates.GitignoreBlock)
		if err != nil {
			return fmt.Errorf(messages.StepsReadTemplateFailedFmt, templates.GitignoreBlock, err)
		}
		action, err := ensureGitignore(env.system(), filepath.Join(env.AppDir, ".gitignore"), string(block))
		if err != nil {
			return err
		}
		printAction(env, action, ".gitignore")
	}
	return nil
}

// writeTemplateFile writes content to rel under the app directory when missing.
// A differing existing file is kept and its diff printed unless env.Force is set.
func writeTemplateFile(env Env, rel string, content []byte) (Action, error) {
	sys := env.system()
	path := filepath.Join(env.AppDir, filepath.FromSlash(rel))

	existing, err := sys.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.StepsReadFailedFmt, path, err)
	}

	var action Action
	switch {
	case err != nil:
		action = ActionCreate
	case normalizeTemplateContent(string(existing)) == normalizeTemplateContent(string(content)):
		printAction(env, ActionIdentical, rel)
		return ActionIdentical, nil
	case env.Force:
		action = ActionForce
	default:
		printAction(env, ActionSkip, rel)
		preview, _ := renderTruncatedUnifiedDiff(rel+" (current)", rel+" (template)",
			normalizeTemplateContent(string(existing)), normalizeTemplateContent(string(content)), env.DiffMaxLines)
		_, _ = fmt.Fprint(env.out(), preview)
		return ActionSkip, nil
	}

	if err := sys.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf(messages.StepsCreateDirFailedFmt, path, err)
	}
	if err := sys.WriteFileAtomic(path, content, filePerm); err != nil {
		return "", fmt.Errorf(messages.StepsWriteFailedFmt, path, err)
	}
	printAction(env, action, rel)
	return action, nil
}

func printAction(env Env, action Action, rel string) {
	_, _ = fmt.Fprintf(env.out(), messages.StepsActionLineFmt, action, rel)
}

func normalizeTemplateContent(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}
