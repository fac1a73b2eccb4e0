package file

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
)

var (
	_ driven.ConfigStore   = (*ConfigStore)(nil)
	_ driven.ConfigWatcher = (*ConfigStore)(nil)
)

// ConfigFileName is the settings file inside the application directory.
const ConfigFileName = "config.toml"

// ConfigStore keeps settings in a TOML file. Values are cached flat under
// dot-notation keys and written back as nested tables, so
// "chart.parallel" lands in a [chart] table.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens dir/config.toml, creating dir if needed.
// An empty dir means ~/.astrolabe. A missing file is an empty config;
// a file that does not parse is an error.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	s := &ConfigStore{path: filepath.Join(dir, ConfigFileName)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultDir returns ~/.astrolabe.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".astrolabe"), nil
}

// Lookup returns the cached value for key.
func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value and rewrites the file. On a write failure the cache
// keeps its previous value.
func (s *ConfigStore) Set(key string, value any) error {
	return s.update(func(values map[string]any) { values[key] = value })
}

// Unset removes key and rewrites the file.
func (s *ConfigStore) Unset(key string) error {
	return s.update(func(values map[string]any) { delete(values, key) })
}

func (s *ConfigStore) update(change func(map[string]any)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.values)
	change(next)
	if err := writeFile(s.path, next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Reload re-reads the file, replacing the cache.
func (s *ConfigStore) Reload() error {
	values, err := readFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.path
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return flattenMap(doc, ""), nil
}

// writeFile replaces path through a temp file in the same directory so a
// watcher never sees a half-written config.
func writeFile(path string, values map[string]any) error {
	data, err := toml.Marshal(nestMap(values))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// CreateTemp already uses 0600; the chmod covers a restrictive umask.
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// flattenMap turns {"a": {"b": 1}} into {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		if table, ok := v.(map[string]any); ok {
			maps.Copy(out, flattenMap(table, k))
			continue
		}
		out[k] = v
	}
	return out
}

// nestMap is the inverse of flattenMap. Keys that collide with a table of
// the same name stay flat and are written as quoted keys.
func nestMap(flat map[string]any) map[string]any {
	root := make(map[string]any)
	for key, value := range flat {
		if collides(flat, key) {
			root[key] = value
			continue
		}

		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return root
}

// collides reports whether key is a prefix of another key or has one as its prefix.
func collides(flat map[string]any, key string) bool {
	for other := range flat {
		if other == key {
			continue
		}
		if strings.HasPrefix(other, key+".") || strings.HasPrefix(key, other+".") {
			return true
		}
	}
	return false
}
