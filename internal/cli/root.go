package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/agentx-labs/i18n-scaffold/internal/branding"
	"github.com/agentx-labs/i18n-scaffold/internal/config"
	"github.com/agentx-labs/i18n-scaffold/internal/scaffold"
	"github.com/agentx-labs/i18n-scaffold/internal/ui"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func init() {
	rootCmd.PersistentFlags().String(config.KeyRoot, config.DefaultRoot,
		"Project root to scaffold into (env "+branding.EnvVar(config.KeyRoot)+")")
	rootCmd.PersistentFlags().String(config.KeyEntry, config.DefaultEntry,
		"Entry file to patch, relative to the project root (env "+branding.EnvVar(config.KeyEntry)+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes react-i18next support into a React project: an i18n bootstrap
module, English and Chinese locale bundles, a language switcher and a demo
page. It then adds "import './i18n';" to the entry file if it is missing.

Running it again is safe: generated files are rewritten with the same
content and the import is never added twice.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(cmd.Root().PersistentFlags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		s := scaffold.ForDir(root, scaffold.Options{
			Entry: config.Entry(),
			Out:   out,
		})

		result, err := s.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nScaffolded %d files into %s\n", len(result.Files), result.Root)

		if len(result.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for _, w := range result.Warnings {
				ui.Warning(out, w)
			}
		}
		if !result.EntryFound {
			fmt.Fprintf(out, "\n%s not found; add \"import './i18n';\" to your entry file.\n", s.Entry())
		}
		return nil
	},
}

// projectRoot resolves the configured root to an absolute, existing directory.
func projectRoot() (string, error) {
	root, err := filepath.Abs(config.Root())
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", root)
	}
	return root, nil
}

// projectFS opens the configured project root.
func projectFS() (billy.Filesystem, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, err
	}
	return osfs.New(root), nil
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the run between files.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.Error(os.Stderr, err)
	}
	return err
}
