package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load decodes one of the embedded tables.
func Load[T any](filename string) (T, error) {
	return LoadFS[T](tablesFS, filename)
}

// LoadFS decodes a JSON table from fsys. Unknown fields and trailing data are
// errors, so a typo in a table fails at start-up instead of loading zeros.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read table %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode table %s: %w", filename, err)
	}
	if dec.More() {
		return result, fmt.Errorf("decode table %s: trailing data after the top-level value", filename)
	}

	return result, nil
}
