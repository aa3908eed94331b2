package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store provides named override trees for contextual configuration.
type Store interface {
	// Override returns the tree registered under id.
	Override(id string) (map[string]any, bool)
}

// MapStore is an in-memory Store.
type MapStore map[string]map[string]any

// Override implements Store.
func (m MapStore) Override(id string) (map[string]any, bool) {
	tree, ok := m[id]
	return tree, ok
}

// FileStore holds overrides read from JSON or YAML documents.
type FileStore struct {
	overrides map[string]map[string]any
	sources   map[string]string
}

// LoadFS walks fsys and parses every .json, .yaml and .yml document. Each
// document carries an "overrides" mapping of override id to configuration
// tree. Ids must be unique across the filesystem. A nil fsys yields an empty
// store.
func LoadFS(fsys fs.FS) (*FileStore, error) {
	store := &FileStore{
		overrides: make(map[string]map[string]any),
		sources:   make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocument(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawID, tree := range doc.Overrides {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("config: file %s defines an empty override id", path)
			}
			if previous, exists := store.sources[id]; exists {
				return fmt.Errorf("config: duplicate override %q (files %s and %s)", id, previous, path)
			}
			if tree == nil {
				tree = map[string]any{}
			}
			store.overrides[id] = tree
			store.sources[id] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Override implements Store.
func (s *FileStore) Override(id string) (map[string]any, bool) {
	if s == nil {
		return nil, false
	}
	tree, ok := s.overrides[id]
	return tree, ok
}

// IDs lists the loaded override ids in sorted order.
func (s *FileStore) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.overrides))
	for id := range s.overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Source returns the file an override was read from.
func (s *FileStore) Source(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	source, ok := s.sources[id]
	return source, ok
}

type documentFile struct {
	Overrides map[string]map[string]any `json:"overrides" yaml:"overrides"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
