//go:build integration

package integration_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/i18n-scaffold/internal/locale"
	"github.com/agentx-labs/i18n-scaffold/internal/project"
	"github.com/agentx-labs/i18n-scaffold/internal/scaffold"
	"github.com/agentx-labs/i18n-scaffold/internal/sourcecheck"
	"github.com/go-git/go-billy/v5/osfs"
)

// TestFullFlowViteProject runs the complete flow against a Vite project:
// inspect dependencies -> scaffold -> verify generated files -> rerun.
func TestFullFlowViteProject(t *testing.T) {
	env := setupTestEnv(t)
	setupViteProject(t, env.ProjectDir)
	fsys := osfs.New(env.ProjectDir)

	// Step 1: The fresh project declares none of the i18next packages.
	pkg, err := project.LoadPackage(fsys)
	if err != nil {
		t.Fatalf("LoadPackage: %v", err)
	}
	hint := project.InstallHint(project.CheckDependencies(pkg))
	if !strings.Contains(hint, "react-i18next@latest") {
		t.Errorf("install hint = %q, want react-i18next", hint)
	}

	// Step 2: Scaffold.
	result, err := scaffold.New(fsys, scaffold.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Patched {
		t.Error("expected src/main.tsx to be patched")
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	// Step 3: Every generated file exists and the sources parse.
	for _, rel := range result.Files {
		p := filepath.Join(env.ProjectDir, filepath.FromSlash(rel))
		assertFileExists(t, p)
		if err := sourcecheck.Validate([]byte(readFile(t, p)), rel); err != nil {
			t.Errorf("generated %s does not parse: %v", rel, err)
		}
	}

	en, err := locale.Parse("en.json", []byte(readFile(t, filepath.Join(env.ProjectDir, "src/i18n/locales/en.json"))))
	if err != nil {
		t.Fatal(err)
	}
	zh, err := locale.Parse("zh.json", []byte(readFile(t, filepath.Join(env.ProjectDir, "src/i18n/locales/zh.json"))))
	if err != nil {
		t.Fatal(err)
	}
	if diff := locale.CompareKeys(en, zh); len(diff) > 0 {
		t.Errorf("locale key drift: %v", diff)
	}

	// The patched entry still parses and starts with the bootstrap import.
	entry := readFile(t, filepath.Join(env.ProjectDir, "src", "main.tsx"))
	if !strings.HasPrefix(entry, "import './i18n';\nimport React from 'react'") {
		t.Errorf("entry file not patched as expected:\n%s", entry)
	}
	if err := sourcecheck.Validate([]byte(entry), "src/main.tsx"); err != nil {
		t.Errorf("patched entry does not parse: %v", err)
	}

	// Step 4: A second run changes nothing.
	second, err := scaffold.New(fsys, scaffold.Options{}).Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if second.Patched {
		t.Error("second run patched the entry again")
	}
	if got := readFile(t, filepath.Join(env.ProjectDir, "src", "main.tsx")); got != entry {
		t.Error("entry file changed on second run")
	}
}
