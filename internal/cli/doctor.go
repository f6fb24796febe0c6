package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"path/filepath"

	"github.com/agentx-labs/i18n-scaffold/internal/config"
	"github.com/agentx-labs/i18n-scaffold/internal/project"
	"github.com/agentx-labs/i18n-scaffold/internal/scaffold"
	"github.com/agentx-labs/i18n-scaffold/internal/ui"
	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
)

var (
	checkRuntime bool
	checkDeps    bool
	checkEntry   bool
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node and npm are on PATH")
	doctorCmd.Flags().BoolVar(&checkDeps, "check-deps", false, "Verify package.json declares the i18next packages")
	doctorCmd.Flags().BoolVar(&checkEntry, "check-entry", false, "Verify the entry file exists and imports ./i18n")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project is ready for react-i18next",
	Long: `Run diagnostic checks on the target project. Nothing is installed or changed;
missing packages are reported with the npm command that adds them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys, err := projectFS()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		// If no specific flag, run all checks.
		all := !checkRuntime && !checkDeps && !checkEntry

		if all || checkRuntime {
			runRuntimeCheck(out)
		}
		if all || checkDeps {
			runDependencyCheck(out, fsys)
		}
		if all || checkEntry {
			runEntryCheck(out, fsys, scaffold.CleanEntry(config.Entry()))
		}
		return nil
	},
}

func runRuntimeCheck(out io.Writer) {
	ui.Header(out, "Runtime check:")
	checkBinary(out, "node")
	checkBinary(out, "npm")
}

func checkBinary(out io.Writer, name string) {
	p, err := lookPath(name)
	if err != nil {
		ui.Status(out, ui.LevelMiss, "%s not found", name)
		return
	}
	ui.Status(out, ui.LevelOK, "%s found at %s", name, p)
}

func runDependencyCheck(out io.Writer, fsys billy.Basic) {
	ui.Header(out, "Dependency check:")

	pkg, err := project.LoadPackage(fsys)
	if errors.Is(err, fs.ErrNotExist) {
		ui.Status(out, ui.LevelMiss, "%s not found", project.PackageFile)
		return
	}
	if err != nil {
		ui.Status(out, ui.LevelFail, "%v", err)
		return
	}

	statuses := project.CheckDependencies(pkg)
	for _, st := range statuses {
		switch st.State {
		case project.StateOK:
			ui.Status(out, ui.LevelOK, "%s %s", st.Name, st.Declared)
		case project.StateMissing:
			ui.Status(out, ui.LevelMiss, "%s not declared", st.Name)
		case project.StateOutdated:
			ui.Status(out, ui.LevelWarn, "%s %s does not satisfy %s", st.Name, st.Declared, st.Constraint)
		case project.StateUnparsed:
			ui.Status(out, ui.LevelInfo, "%s %s (cannot compare with %s)", st.Name, st.Declared, st.Constraint)
		}
	}

	if hint := project.InstallHint(statuses); hint != "" {
		fmt.Fprintf(out, "\n  Run: %s\n", hint)
	}
}

func runEntryCheck(out io.Writer, fsys billy.Basic, entry string) {
	ui.Header(out, "Entry check:")

	f, err := fsys.Open(filepath.FromSlash(entry))
	if errors.Is(err, fs.ErrNotExist) {
		ui.Status(out, ui.LevelMiss, "%s not found", entry)
		if found, ok := project.DetectEntry(fsys); ok {
			ui.Status(out, ui.LevelInfo, "found %s; rerun with --entry %s", found, found)
		}
		return
	}
	if err != nil {
		ui.Status(out, ui.LevelFail, "opening %s: %v", entry, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		ui.Status(out, ui.LevelFail, "reading %s: %v", entry, err)
		return
	}
	if bytes.Contains(data, []byte(scaffold.ImportMarker)) {
		ui.Status(out, ui.LevelOK, "%s imports ./i18n", entry)
	} else {
		ui.Status(out, ui.LevelWarn, "%s does not import ./i18n yet", entry)
	}

	if _, err := fsys.Stat(scaffold.BootstrapPath); err != nil {
		ui.Status(out, ui.LevelMiss, "%s not generated yet", scaffold.BootstrapPath)
	}
}
