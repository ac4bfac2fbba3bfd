// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		want    []string
		wantErr error
	}{
		{
			name: "sorted template files only",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "resume_b.txt", "b")
				writeFile(t, dir, "resume_a.tex", "a")
				writeFile(t, dir, "notes.md", "skip")
				writeFile(t, dir, ".hidden.txt", "skip")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))
				return dir
			},
			want: []string{"resume_a.tex", "resume_b.txt"},
		},
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent")
			},
			wantErr: ErrNoTemplateDir,
		},
		{
			name: "empty directory",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "README.md", "not a template")
				return dir
			},
			wantErr: ErrNoTemplates,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := List(tt.setup(t))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumbered(t *testing.T) {
	got := Numbered([]string{"a.txt", "b.tex"})
	assert.Equal(t, map[string]string{"1": "a.txt", "2": "b.tex"}, got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.txt", `\documentclass{article}`)
	writeFile(t, dir, "bom.tex", "\xef\xbb\xbf\\begin{document}")
	writeFile(t, dir, "notes.md", "x")

	t.Run("plain file", func(t *testing.T) {
		got, err := Load(dir, "plain.txt")
		require.NoError(t, err)
		assert.Equal(t, `\documentclass{article}`, got)
	})

	t.Run("byte order mark dropped", func(t *testing.T) {
		got, err := Load(dir, "bom.tex")
		require.NoError(t, err)
		assert.Equal(t, `\begin{document}`, got)
	})

	for _, name := range []string{"", "../plain.txt", "sub/plain.txt", `..\plain.txt`, "missing.txt", "notes.md"} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := Load(dir, name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTemplateNotFound), "got %v", err)
		})
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode(strings.NewReader("no bom here"))
	require.NoError(t, err)
	assert.Equal(t, "no bom here", got)
}
