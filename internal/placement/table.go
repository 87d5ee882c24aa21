package placement

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kinetic-notation/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// TableSet holds the placement tables loaded at startup, keyed by table
// name. Tables are read-only after loading; concurrent readers need no
// coordination.
type TableSet struct {
	tables map[string]map[string]models.Offset
}

// LoadTables reads every *.yaml/*.yml file in dir as one placement
// table named after the file. A missing directory yields an empty set,
// not an error; the resolver degrades gracefully without tables.
func LoadTables(dir string) (*TableSet, error) {
	set := &TableSet{tables: make(map[string]map[string]models.Offset)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, errors.Wrapf(err, "reading placements directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "opening placement table %s", entry.Name())
		}
		table, err := ParseTable(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing placement table %s", entry.Name())
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		set.tables[name] = table
	}

	return set, nil
}

// ParseTable parses one YAML placement table: a mapping from placement
// key to a two-element [x, y] offset.
func ParseTable(r io.Reader) (map[string]models.Offset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string][]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	table := make(map[string]models.Offset, len(raw))
	for key, pair := range raw {
		if len(pair) != 2 {
			return nil, errors.Newf("key %q: offset must have exactly two components, got %d", key, len(pair))
		}
		table[key] = models.Offset{X: pair[0], Y: pair[1]}
	}
	return table, nil
}

// Get returns a table by name.
func (s *TableSet) Get(name string) (map[string]models.Offset, bool) {
	table, ok := s.tables[name]
	return table, ok
}

// Names returns the sorted table names.
func (s *TableSet) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
