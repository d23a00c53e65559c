package record

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Normalize drops every line that is empty after trimming whitespace and makes
// sure the last remaining line ends with a newline. Empty input is returned
// unchanged. Normalize(Normalize(b)) == Normalize(b).
func Normalize(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	out := make([]byte, 0, len(data)+1)
	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		out = append(out, line...)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}

// Guard rewrites the file at path in its normalized form. A file that is
// already clean is left untouched. It runs before every read of the last row
// and before every append, so hand edits and interrupted writes never leave a
// blank or unterminated line in front of new data.
func Guard(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cleaned := Normalize(data)
	if bytes.Equal(cleaned, data) {
		return f.Close()
	}

	if _, err := f.WriteAt(cleaned, 0); err != nil {
		f.Close()
		return fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	if err := f.Truncate(int64(len(cleaned))); err != nil {
		f.Close()
		return fmt.Errorf("failed to truncate %s: %w", path, err)
	}
	return f.Close()
}
