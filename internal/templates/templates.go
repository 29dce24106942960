// Package templates exposes the embedded files written by the generation steps.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/conn-castle/ror-installer/internal/messages"
)

//go:embed all:files
var embedded embed.FS

const root = "files"

// TemplateSuffix marks files rendered with text/template before writing.
const TemplateSuffix = ".tmpl"

// BlockSuffix marks managed blocks merged into existing files rather than written.
const BlockSuffix = ".block"

// GitignoreBlock is the managed .gitignore block owned by the base step.
const GitignoreBlock = "base/gitignore.block"

// Read returns the raw contents of the template at name.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(embedded, path.Join(root, name))
}

// Walk visits every template under dir; paths passed to fn are relative to the
// template root so they can be handed back to Read.
func Walk(dir string, fn fs.WalkDirFunc) error {
	base := path.Join(root, dir)
	return fs.WalkDir(embedded, base, func(p string, d fs.DirEntry, err error) error {
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		return fn(rel, d, err)
	})
}

// StepFiles lists the file templates owned by step in lexical order, excluding
// managed blocks.
func StepFiles(step string) ([]string, error) {
	var files []string
	err := Walk(step, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, BlockSuffix) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesListFailedFmt, step, err)
	}
	sort.Strings(files)
	return files, nil
}

// DestPath maps a template path to its path relative to the app directory:
// the step directory is dropped along with any TemplateSuffix.
func DestPath(name string) string {
	name = strings.TrimSuffix(name, TemplateSuffix)
	if i := strings.Index(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Render returns the template contents, executed against data when the name
// carries TemplateSuffix. Missing keys are errors.
func Render(name string, data any) ([]byte, error) {
	raw, err := Read(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, TemplateSuffix) {
		return raw, nil
	}
	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesParseFailedFmt, name, err)
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf(messages.TemplatesRenderFailedFmt, name, err)
	}
	return out.Bytes(), nil
}
