package steps

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/ror-installer/internal/messages"
)

const (
	gitignoreBlockStart = "# >>> react-on-rails (managed by ror)"
	gitignoreBlockEnd   = "# <<< react-on-rails"
)

// ensureGitignore writes the managed block into path, replacing an existing
// block in place and appending one otherwise. Lines outside the block are kept.
func ensureGitignore(sys System, path string, block string) (Action, error) {
	rendered := renderGitignoreBlock(block)
	contentBytes, err := sys.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf(messages.StepsReadFailedFmt, path, err)
	}
	if errors.Is(err, os.ErrNotExist) {
		if err := sys.WriteFileAtomic(path, []byte(rendered), filePerm); err != nil {
			return "", fmt.Errorf(messages.StepsWriteFailedFmt, path, err)
		}
		return ActionCreate, nil
	}

	content := normalizeTemplateContent(string(contentBytes))
	updated, err := updateGitignoreContent(content, rendered)
	if err != nil {
		return "", fmt.Errorf(messages.StepsGitignoreMalformedFmt, path, err)
	}
	if updated == content {
		return ActionIdentical, nil
	}
	if err := sys.WriteFileAtomic(path, []byte(updated), filePerm); err != nil {
		return "", fmt.Errorf(messages.StepsWriteFailedFmt, path, err)
	}
	return ActionUpdate, nil
}

func renderGitignoreBlock(block string) string {
	body := strings.TrimRight(normalizeTemplateContent(block), "\n")
	return gitignoreBlockStart + "\n" + body + "\n" + gitignoreBlockEnd + "\n"
}

func updateGitignoreContent(content string, rendered string) (string, error) {
	lines := splitLines(content)
	start, end := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case gitignoreBlockStart:
			if start >= 0 {
				return "", errors.New(messages.StepsGitignoreDuplicateStart)
			}
			start = i
		case gitignoreBlockEnd:
			if start >= 0 && end < 0 {
				end = i
			}
		}
	}
	if start >= 0 && end < 0 {
		return "", errors.New(messages.StepsGitignoreMissingEnd)
	}

	blockLines := splitLines(rendered)
	if start < 0 {
		out := strings.TrimRight(content, "\n")
		if out != "" {
			out += "\n\n"
		}
		return out + rendered, nil
	}

	merged := make([]string, 0, len(lines)-(end-start+1)+len(blockLines))
	merged = append(merged, lines[:start]...)
	merged = append(merged, blockLines...)
	merged = append(merged, lines[end+1:]...)
	return strings.Join(merged, "\n") + "\n", nil
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "\n")
}
