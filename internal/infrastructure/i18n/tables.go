package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"vimlearn/internal/domain"
	"vimlearn/internal/domain/entities"
)

//go:embed locales/active.*
var localeFS embed.FS

// Embedded returns the built-in translation files.
func Embedded() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic("i18n: embedded locales: " + err.Error())
	}
	return sub
}

type tableFile struct {
	name   string
	code   string
	format string
}

// tableFiles lists active.<code>.<format> files at the root of fsys.
func tableFiles(fsys fs.FS) ([]tableFile, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var out []tableFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		parts := strings.Split(e.Name(), ".")
		if len(parts) != 3 || parts[0] != "active" || parts[1] == "" {
			continue
		}
		out = append(out, tableFile{name: e.Name(), code: parts[1], format: parts[2]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// LoadTables decodes every active.<code>.(toml|yaml|yml) file of fsys into
// a translation table keyed by locale code.
func LoadTables(fsys fs.FS) (entities.Table, error) {
	files, err := tableFiles(fsys)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	table := entities.Table{}
	for _, f := range files {
		if _, dup := table[f.code]; dup {
			return nil, fmt.Errorf("load %s: locale %q defined twice", f.name, f.code)
		}
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		tree, err := decodeTable(f.format, data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", f.name, err)
		}
		table[f.code] = tree
	}
	if len(table) == 0 {
		return nil, domain.ErrNoTables
	}
	return table, nil
}

func decodeTable(format string, data []byte) (map[string]any, error) {
	tree := map[string]any{}
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTableFormat, format)
	}
	return tree, nil
}
