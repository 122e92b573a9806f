package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissing is returned when a required text input is absent or blank.
var ErrMissing = errors.New("input is missing")

// Source describes how to load a text input.
type Source struct {
	// Name is used in error messages to give more context about the input.
	Name string
	// Value is inline text provided via flags or a form field.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value.
	File string
}

// Load returns the resolved text from the provided source. When File is
// set it takes precedence over Value. The returned text is always trimmed. An
// error wrapping ErrMissing is returned when neither File nor Value contain text.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "input"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	text := strings.TrimSpace(src.Value)
	if text == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q is empty: %w", name, src.File, ErrMissing)
		}
		return "", fmt.Errorf("%s is not provided: %w", name, ErrMissing)
	}

	return text, nil
}
