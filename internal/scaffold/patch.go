package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/i18n-scaffold/internal/ui"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ImportMarker is searched for verbatim in the entry file. Any occurrence,
// on any line, counts as already patched.
const ImportMarker = "import './i18n'"

const importLine = ImportMarker + ";\n"

// PatchEntry prepends the bootstrap import to the entry file. It reports
// whether the file was rewritten. A missing entry file is skipped, never
// created, and a file that already contains ImportMarker is left untouched.
func (s *Scaffolder) PatchEntry() (bool, error) {
	_, patched, err := s.patchEntry()
	return patched, err
}

// patchEntry is PatchEntry that also reports whether the entry file exists.
func (s *Scaffolder) patchEntry() (found, patched bool, err error) {
	name := filepath.FromSlash(s.entry)

	content, err := readFile(s.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("reading %s: %w", s.entry, err)
	}

	if strings.Contains(string(content), ImportMarker) {
		return true, false, nil
	}

	out := append([]byte(importLine), content...)
	if err := util.WriteFile(s.fs, name, out, 0644); err != nil {
		return true, false, fmt.Errorf("writing %s: %w", s.entry, err)
	}

	ui.Updated(s.out, "%s to include i18n setup", s.entry)
	return true, true, nil
}

func readFile(fsys billy.Basic, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
