package cli

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"

	"github.com/agentx-labs/i18n-scaffold/internal/locale"
	"github.com/agentx-labs/i18n-scaffold/internal/scaffold"
	"github.com/agentx-labs/i18n-scaffold/internal/ui"
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the locale bundles in the project",
	Long: `Validate every JSON bundle under src/i18n/locales: each must be a flat
object of strings carrying the title, description and language keys, and all
bundles must share one key set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, err := projectFS()
		if err != nil {
			return err
		}
		return checkLocales(cmd.OutOrStdout(), fsys)
	},
}

func checkLocales(out io.Writer, fsys billy.Filesystem) error {
	ui.Header(out, "Locale check: %s", scaffold.LocalesDir)

	entries, err := fsys.ReadDir(scaffold.LocalesDir)
	if errors.Is(err, fs.ErrNotExist) {
		ui.Status(out, ui.LevelMiss, "%s not found (run %s first)", scaffold.LocalesDir, rootCmd.Name())
		return fmt.Errorf("no locale bundles found")
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", scaffold.LocalesDir, err)
	}

	var bundles []*locale.Bundle
	failures := 0
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		p := path.Join(scaffold.LocalesDir, entry.Name())

		b, issues, err := loadBundle(fsys, p)
		if err != nil {
			ui.Status(out, ui.LevelFail, "%s: %v", p, err)
			failures++
			continue
		}
		if len(issues) > 0 {
			ui.Status(out, ui.LevelFail, "%s: %d schema issue(s)", p, len(issues))
			for _, issue := range issues {
				ui.Warning(out, issue.String())
			}
			failures++
		} else {
			title, _ := locale.Lookup(b, "title")
			ui.Status(out, ui.LevelOK, "%s (%s): %d keys, title %q", p, b.Tag, len(b.Messages), title)
		}
		if b != nil {
			bundles = append(bundles, b)
		}
	}

	if len(bundles) == 0 && failures == 0 {
		ui.Status(out, ui.LevelMiss, "no .json bundles in %s", scaffold.LocalesDir)
		return fmt.Errorf("no locale bundles found")
	}

	// Compare every bundle against the first one, alphabetically.
	slices.SortFunc(bundles, func(a, b *locale.Bundle) int {
		return cmp.Compare(a.Path, b.Path)
	})
	for i := 1; i < len(bundles); i++ {
		if diff := locale.CompareKeys(bundles[0], bundles[i]); len(diff) > 0 {
			ui.Status(out, ui.LevelFail, "%s and %s differ on keys: %v", bundles[0].Path, bundles[i].Path, diff)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("locale check found %d problem(s)", failures)
	}
	return nil
}

// loadBundle reads, schema-validates and parses one bundle. A bundle with
// schema issues is still returned when it parses, so key parity can be
// checked too.
func loadBundle(fsys billy.Basic, p string) (*locale.Bundle, []locale.ValidationIssue, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	result, err := locale.Validate(data)
	if err != nil {
		return nil, nil, err
	}

	b, err := locale.Parse(p, data)
	if err != nil {
		if len(result.Issues) > 0 {
			return nil, result.Issues, nil
		}
		return nil, nil, err
	}
	return b, result.Issues, nil
}
