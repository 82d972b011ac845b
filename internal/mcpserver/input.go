package mcpserver

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// textInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type textInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a text file on disk (read only, never modified)"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

var errInputTooLarge = errors.New("input exceeds maximum size")

// resolve returns the document text from whichever input was provided,
// enforcing maxSize bytes for both sources.
func (s textInput) resolve(maxSize int64) (string, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return "", fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > maxSize {
			return "", fmt.Errorf("content: %w (%d > %d bytes)", errInputTooLarge, len(s.Content), maxSize)
		}
		return s.Content, nil
	}

	info, err := os.Stat(s.File)
	if err != nil {
		return "", fmt.Errorf("file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("file: %s is a directory", s.File)
	}
	if info.Size() > maxSize {
		return "", fmt.Errorf("file: %w (%d > %d bytes)", errInputTooLarge, info.Size(), maxSize)
	}
	data, err := os.ReadFile(s.File)
	if err != nil {
		return "", fmt.Errorf("file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file: %s is not valid UTF-8 text", s.File)
	}
	return string(data), nil
}
