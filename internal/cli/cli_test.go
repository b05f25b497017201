package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdown/mdoutline/internal/cli"
)

const sampleNote = `# Intro

Some prose with a [link](https://example.com).

## Details

` + "```" + `
# not a heading
` + "```" + `

# Wrap Up
`

func writeNote(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "today"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestOutline_JSONFormat(t *testing.T) {
	path := writeNote(t, sampleNote)

	out, err := execute(t, "outline", path, "--format", "json")
	require.NoError(t, err)

	var forest []struct {
		ID       string `json:"id"`
		Level    int    `json:"level"`
		Text     string `json:"text"`
		Line     int    `json:"line"`
		Children []struct {
			Text string `json:"text"`
			Line int    `json:"line"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &forest))

	require.Len(t, forest, 2)
	assert.Equal(t, "Intro", forest[0].Text)
	assert.Equal(t, 1, forest[0].Line)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Details", forest[0].Children[0].Text)
	assert.Equal(t, 5, forest[0].Children[0].Line)
	assert.Equal(t, "Wrap Up", forest[1].Text)

	// The fenced fake heading never reaches the outline.
	assert.NotContains(t, out, "not a heading")
}

func TestOutline_TextFormat(t *testing.T) {
	path := writeNote(t, "# A\n## B\n")

	out, err := execute(t, "outline", path, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "A\t1\n  B\t2\n", out)
}

func TestOutline_MaxDepth(t *testing.T) {
	path := writeNote(t, "# A\n## B\n### C\n")

	out, err := execute(t, "outline", path, "--format", "text", "--max-depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "B")
	assert.NotContains(t, out, "C")
}

func TestOutline_MissingFile(t *testing.T) {
	_, err := execute(t, "outline", filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestOutline_InvalidFormat(t *testing.T) {
	path := writeNote(t, "# A\n")

	_, err := execute(t, "outline", path, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrConfigLoad))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(err))
}

func TestOutline_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mdoutline.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: text\n"), 0o600))

	path := writeNote(t, "# A\n")

	out, err := execute(t, "outline", path, "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "A\t1\n", out)
}

func TestOutline_MissingConfigFile(t *testing.T) {
	path := writeNote(t, "# A\n")

	_, err := execute(t, "outline", path, "--config", filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrConfigLoad))
}

func TestNodes_JSONFormat(t *testing.T) {
	path := writeNote(t, sampleNote)

	out, err := execute(t, "nodes", path, "--format", "json")
	require.NoError(t, err)

	var nodes []struct {
		Type    string `json:"type"`
		Content string `json:"content"`
		Level   int    `json:"level"`
		Text    string `json:"text"`
		Link    string `json:"link"`
		Range   struct {
			Start struct {
				Offset int `json:"offset"`
				Line   int `json:"line"`
				Column int `json:"column"`
			} `json:"start"`
		} `json:"range"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.NotEmpty(t, nodes)

	assert.Equal(t, "header", nodes[0].Type)
	assert.Equal(t, "# Intro", nodes[0].Content)
	assert.Equal(t, 1, nodes[0].Level)
	assert.Equal(t, 1, nodes[0].Range.Start.Line)
	assert.Equal(t, 1, nodes[0].Range.Start.Column)

	var kinds []string
	for _, n := range nodes {
		kinds = append(kinds, n.Type)
	}
	assert.Contains(t, kinds, "link")
	assert.Contains(t, kinds, "code")

	for _, n := range nodes {
		if n.Type == "code" {
			assert.Equal(t, "# not a heading", n.Content)
		}
		if n.Type == "link" {
			assert.Equal(t, "link", n.Text)
			assert.Equal(t, "https://example.com", n.Link)
		}
	}
}

func TestNodes_PrettyTable(t *testing.T) {
	path := writeNote(t, "# A\n")

	out, err := execute(t, "nodes", path, "--color", "never")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "KIND"), "missing table header: %q", out)
	assert.Contains(t, out, "header")
	assert.Contains(t, out, "level=1")
}

func TestNodes_DetectLanguages(t *testing.T) {
	path := writeNote(t, "```\n#!/bin/bash\necho hi\n```\n")

	out, err := execute(t, "nodes", path, "--format", "json", "--detect-languages")
	require.NoError(t, err)

	var nodes []struct {
		Type     string `json:"type"`
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "bash", nodes[0].Language)
}

func TestNodes_FenceLanguagePassesThrough(t *testing.T) {
	path := writeNote(t, "```go\nfmt.Println(1)\n```\n")

	out, err := execute(t, "nodes", path, "--format", "json")
	require.NoError(t, err)

	var nodes []struct {
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "go", nodes[0].Language)
}

func TestVersionCommand(t *testing.T) {
	_, err := execute(t, "version")
	require.NoError(t, err)
}

func TestOutline_RequiresFileArgument(t *testing.T) {
	_, err := execute(t, "outline")
	require.Error(t, err)
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeForError(nil))
	assert.Equal(t, cli.ExitError, cli.ExitCodeForError(errors.New("boom")))
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(cli.ErrConfigLoad))
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(fs.ErrNotExist))
}
