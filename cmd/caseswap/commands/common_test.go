package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// captureStdout redirects command output into a buffer for the duration of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

// provideStdin makes ReadInput("-") read from content for the duration of the test.
func provideStdin(t *testing.T, content string) {
	t.Helper()
	prev := stdin
	stdin = strings.NewReader(content)
	t.Cleanup(func() { stdin = prev })
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"style": "kebab"}

	t.Run("json format", func(t *testing.T) {
		buf := captureStdout(t)
		require.NoError(t, OutputStructured(data, FormatJSON))
		var got map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml format", func(t *testing.T) {
		buf := captureStdout(t)
		require.NoError(t, OutputStructured(data, FormatYAML))
		var got map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		assert.Error(t, err)
	})
}

func TestNewRegistry(t *testing.T) {
	assert.False(t, NewRegistry(false).StrictScreamingSnake())
	assert.True(t, NewRegistry(true).StrictScreamingSnake())
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.go")

	t.Run("distinct paths", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.go"), []string{input}))
	})

	t.Run("output equals input", func(t *testing.T) {
		err := ValidateOutputPath(input, []string{input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("stdin input is ignored", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(StdinFilePath, []string{StdinFilePath}))
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.txt")))
	assert.NoError(t, RejectSymlinkOutput(target))

	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestReadInput(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.txt")
		require.NoError(t, os.WriteFile(path, []byte("max_size"), 0o600))
		data, err := ReadInput(path)
		require.NoError(t, err)
		assert.Equal(t, "max_size", string(data))
	})

	t.Run("stdin", func(t *testing.T) {
		provideStdin(t, "from stdin")
		data, err := ReadInput(StdinFilePath)
		require.NoError(t, err)
		assert.Equal(t, "from stdin", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInput(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "main.go", FormatInputPath("main.go"))
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items", "Status", 42)
	assert.Equal(t, "Status: 42 items", buf.String())
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWritef_WriteError(t *testing.T) {
	// Must not panic; the failure is reported on stderr.
	assert.NotPanics(t, func() { Writef(errorWriter{}, "ignored") })
}
