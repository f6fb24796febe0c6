package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestCreated(t *testing.T) {
	var buf bytes.Buffer
	Created(&buf, "src/i18n/index.ts")
	if !strings.Contains(buf.String(), "Created src/i18n/index.ts") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestStatusTags(t *testing.T) {
	tests := []struct {
		level Level
		tag   string
	}{
		{LevelOK, "[ OK ]"},
		{LevelInfo, "[INFO]"},
		{LevelWarn, "[WARN]"},
		{LevelMiss, "[MISS]"},
		{LevelFail, "[FAIL]"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Status(&buf, tt.level, "node found at %s", "/usr/bin/node")
		out := buf.String()
		if !strings.Contains(out, tt.tag) {
			t.Errorf("Status(%d) = %q, want tag %q", tt.level, out, tt.tag)
		}
		if !strings.Contains(out, "node found at /usr/bin/node") {
			t.Errorf("Status(%d) = %q, missing message", tt.level, out)
		}
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("writing src/pages/Home.tsx: permission denied"))
	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestMain(m *testing.M) {
	os.Setenv("NO_COLOR", "1")
	os.Exit(m.Run())
}
