package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var builtinCatalog []byte

type catalogDocument struct {
	Platforms []PlatformSpec      `toml:"platform"`
	Presets   []CompressionPreset `toml:"preset"`
}

// Load builds a catalog from the TOML file at path. An empty path loads the
// embedded built-in tables. Override files replace the built-in catalog
// wholesale; they are not merged.
func Load(path string) (*Catalog, error) {
	data := builtinCatalog
	source := "built-in"
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		data = fileData
		source = path
	}

	var doc catalogDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog (%s): %w", source, err)
	}

	cat, err := New(doc.Platforms, doc.Presets)
	if err != nil {
		return nil, fmt.Errorf("catalog (%s): %w", source, err)
	}
	return cat, nil
}

// MustLoadBuiltin loads the embedded catalog and panics on failure. The
// built-in tables ship with the binary, so a failure here is a build defect.
func MustLoadBuiltin() *Catalog {
	cat, err := Load("")
	if err != nil {
		panic(err)
	}
	return cat
}
