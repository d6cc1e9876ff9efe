package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/sortable/internal/model"
)

// File-backed list storage. Single file, human-readable, order preserved.
// The format follows the extension: .yaml/.yml is YAML, anything else JSON.
// No locking; fine for a local single-user tool.

const DefaultFileName = "todos.json"

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the list at path. A missing file is an empty list, not an error.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	var items []model.Item
	if isYAML(path) {
		err = yaml.Unmarshal(b, &items)
	} else {
		err = json.Unmarshal(b, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if items == nil {
		items = []model.Item{}
	}
	// files written by hand or by older versions may lack IDs
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	return items, nil
}

// Save writes items to path in order, creating the parent directory.
func Save(path string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(items)
	} else {
		b, err = json.MarshalIndent(items, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
