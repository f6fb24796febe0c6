package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
)

//go:embed templates
var templateFS embed.FS

// Well-known locations inside the target project.
const (
	BootstrapPath = "src/i18n/index.ts"
	LocalesDir    = "src/i18n/locales"
	DefaultEntry  = "src/main.tsx"
)

// layout is the write order. Each path also names its template under
// templates/.
var layout = []string{
	BootstrapPath,
	LocalesDir + "/en.json",
	LocalesDir + "/zh.json",
	"src/components/LanguageSwitcher.tsx",
	"src/pages/Home.tsx",
}

// FileSpec is one generated file: a slash-separated path relative to the
// project root and the complete file body.
type FileSpec struct {
	Path    string
	Content string
}

var loadFiles = sync.OnceValues(func() ([]FileSpec, error) {
	return readFiles(templateFS, layout)
})

// Files returns the generated file set in write order. The returned slice is
// a copy; callers may modify it freely.
func Files() ([]FileSpec, error) {
	specs, err := loadFiles()
	if err != nil {
		return nil, err
	}
	return slices.Clone(specs), nil
}

// readFiles loads templates/<p> for every p in paths. Bodies are trimmed of
// surrounding whitespace, so generated files never end in a newline.
func readFiles(fsys fs.FS, paths []string) ([]FileSpec, error) {
	seen := make(map[string]bool, len(paths))
	specs := make([]FileSpec, 0, len(paths))

	for _, p := range paths {
		if !fs.ValidPath(p) || p == "." {
			return nil, fmt.Errorf("invalid generated path %q", p)
		}
		if seen[p] {
			return nil, fmt.Errorf("generated path %q is listed twice", p)
		}
		seen[p] = true

		data, err := fs.ReadFile(fsys, path.Join("templates", p))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", p, err)
		}
		specs = append(specs, FileSpec{
			Path:    p,
			Content: strings.TrimSpace(string(data)),
		})
	}

	return specs, nil
}
