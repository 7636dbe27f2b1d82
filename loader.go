package keybind

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a bindings file into items keyed by action name. The
// format is chosen by extension: .yaml/.yml and .json are decoded
// accordingly, anything else as TOML. A missing file is not an error
// and yields nil items, so user override files are optional.
// Malformed content is reported as *DecodeError.
func LoadFile(path string) (map[string]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	return decode(path, data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// LoadReader decodes bindings from a reader. Format is "toml", "yaml",
// or "json".
func LoadReader(r io.Reader, format string) (map[string]Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bindings: %w", err)
	}
	return decode("<reader>", data, format)
}

func decode(path string, data []byte, format string) (map[string]Item, error) {
	var items map[string]Item
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &items)
	case "json":
		err = json.Unmarshal(data, &items)
	default:
		err = toml.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return items, nil
}

// FromFile loads a bindings file and builds a Table from it alone.
func FromFile(path string) (*Table, error) {
	items, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromItems(items)
}

// MergeFile loads a bindings file and merges it over a derived set.
// With the file absent the derived set is used unchanged, so
// applications can point at a user config path that may not exist yet.
func MergeFile(derived map[string]Item, path string) (*Table, error) {
	items, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Merge(derived, items)
}
