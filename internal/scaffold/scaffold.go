package scaffold

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/agentx-labs/i18n-scaffold/internal/ui"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Options configures a Scaffolder.
type Options struct {
	// Entry is the entry file to patch, relative to the project root.
	// Defaults to DefaultEntry.
	Entry string
	// Out receives one status line per file written. Nil discards output.
	Out io.Writer
}

// Result holds the outcome of a scaffolding run.
type Result struct {
	Root  string
	Files []string
	// EntryFound is false when the entry file does not exist; it is then
	// skipped and never created.
	EntryFound bool
	Patched    bool
	Warnings   []string
}

// Scaffolder writes the generated file set into a project filesystem.
type Scaffolder struct {
	fs    billy.Filesystem
	entry string
	out   io.Writer
}

// New returns a Scaffolder that writes into fsys. Paths are resolved
// relative to the root of fsys.
func New(fsys billy.Filesystem, opts Options) *Scaffolder {
	s := &Scaffolder{
		fs:    fsys,
		entry: CleanEntry(opts.Entry),
		out:   opts.Out,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	return s
}

// CleanEntry normalizes an entry path to the slash-separated form the
// Scaffolder patches. An empty path yields DefaultEntry.
func CleanEntry(entry string) string {
	if entry == "" {
		return DefaultEntry
	}
	return path.Clean(filepath.ToSlash(entry))
}

// ForDir returns a Scaffolder rooted at the directory root on disk.
func ForDir(root string, opts Options) *Scaffolder {
	return New(osfs.New(root), opts)
}

// Entry returns the entry file this Scaffolder patches.
func (s *Scaffolder) Entry() string {
	return s.entry
}

// Run writes every generated file, overwriting existing ones, then patches
// the entry file. The first filesystem error aborts the run; files already
// written stay on disk. Validation findings on the generated sources are
// returned as warnings and never fail the run.
func (s *Scaffolder) Run(ctx context.Context) (*Result, error) {
	specs, err := Files()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Root:     s.fs.Root(),
		Warnings: verify(specs),
	}

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.write(spec); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.Path)
		ui.Created(s.out, spec.Path)
	}

	found, patched, err := s.patchEntry()
	if err != nil {
		return nil, err
	}
	result.EntryFound = found
	result.Patched = patched

	return result, nil
}

// write creates the parent directories of spec.Path and replaces the file.
func (s *Scaffolder) write(spec FileSpec) error {
	name := filepath.FromSlash(spec.Path)

	if dir := path.Dir(spec.Path); dir != "." {
		if err := s.fs.MkdirAll(filepath.FromSlash(dir), 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := util.WriteFile(s.fs, name, []byte(spec.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", spec.Path, err)
	}
	return nil
}
