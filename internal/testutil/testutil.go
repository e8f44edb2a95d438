// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/input"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadTree returns every file under dir keyed by slash-separated relative path.
// A missing dir yields an empty map.
func ReadTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipDir
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree %s: %v", dir, err)
	}
	return files
}

// SortedKeys returns the keys of m in order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScriptedPrompter answers prompts from a script. Each key holds answers in
// order. An answer the field validator rejects is recorded and the next one
// is tried, like a user typing again.
type ScriptedPrompter struct {
	// Answers maps a field key to successive answers.
	Answers map[string][]string

	// Cancel makes Prompt abort before answering anything.
	Cancel bool

	// Asked records the keys prompted for, in order.
	Asked []string

	// Rejected records each answer a validator refused, per key.
	Rejected map[string][]string
}

// Prompt implements input.Prompter.
func (p *ScriptedPrompter) Prompt(ctx context.Context, fields []input.Field) error {
	if p.Cancel {
		return oerrors.ErrCancelled
	}
	if p.Rejected == nil {
		p.Rejected = map[string][]string{}
	}

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Asked = append(p.Asked, f.Key)

		answered := false
		for len(p.Answers[f.Key]) > 0 {
			answer := p.Answers[f.Key][0]
			p.Answers[f.Key] = p.Answers[f.Key][1:]

			if f.Validate != nil {
				if err := f.Validate(answer); err != nil {
					p.Rejected[f.Key] = append(p.Rejected[f.Key], answer)
					continue
				}
			}
			*f.Value = answer
			answered = true
			break
		}

		if !answered {
			return fmt.Errorf("no valid scripted answer for %s", f.Key)
		}
	}
	return nil
}
