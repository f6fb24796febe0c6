package project

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"
)

// PackageFile is the manifest name looked up at the project root.
const PackageFile = "package.json"

// Package holds the parts of package.json the checks need.
type Package struct {
	Name            string
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Declared returns the version range declared for name in dependencies or
// devDependencies, preferring dependencies.
func (p *Package) Declared(name string) (string, bool) {
	if v, ok := p.Dependencies[name]; ok {
		return v, true
	}
	v, ok := p.DevDependencies[name]
	return v, ok
}

// LoadPackage reads package.json from the root of fsys. A missing file
// yields an error matching fs.ErrNotExist.
func LoadPackage(fsys billy.Basic) (*Package, error) {
	f, err := fsys.Open(PackageFile)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", PackageFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", PackageFile, err)
	}
	return ParsePackage(data)
}

// ParsePackage decodes package.json content. Non-string dependency values
// are ignored.
func ParsePackage(data []byte) (*Package, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PackageFile, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing %s: top-level value must be an object", PackageFile)
	}

	pkg := &Package{
		Dependencies:    stringMap(obj["dependencies"]),
		DevDependencies: stringMap(obj["devDependencies"]),
	}
	pkg.Name, _ = obj["name"].(string)
	return pkg, nil
}

func stringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
