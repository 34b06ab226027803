package main

// Notes:
// - runInit: we test scaffolding into an empty directory, the generated
//   config being loadable, and that a second run skips every file.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanshlee/evanshlee.github.io/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunInit - Site scaffolding
// ---------------------------------------------------------------------------

func TestRunInit(t *testing.T) {
	t.Parallel()

	t.Run("creates starter files and config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		env, stdout, _ := newTestEnv()

		if err := runInit([]string{dir}, &initFlags{}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, rel := range []string{
			"sitebuild.yaml",
			"index.md",
			filepath.Join("templates", "base.html"),
			filepath.Join("styles", "main.css"),
		} {
			if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
				t.Errorf("%s not created: %v", rel, err)
			}
			if !strings.Contains(stdout.String(), "Created "+filepath.Join(dir, rel)) {
				t.Errorf("stdout should report %s", rel)
			}
		}

		cfg, err := config.LoadConfig(filepath.Join(dir, "sitebuild.yaml"))
		if err != nil {
			t.Fatalf("generated config does not load: %v", err)
		}
		if cfg.Paths.Output != config.DefaultOutputDir {
			t.Errorf("Paths.Output = %q, want %q", cfg.Paths.Output, config.DefaultOutputDir)
		}
	})

	t.Run("second run skips everything", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		env, _, _ := newTestEnv()
		if err := runInit([]string{dir}, &initFlags{}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		env, stdout, _ := newTestEnv()
		if err := runInit([]string{dir}, &initFlags{}, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(stdout.String(), "Created") {
			t.Errorf("second run created files:\n%s", stdout.String())
		}
		if !strings.Contains(stdout.String(), "Skipped "+filepath.Join(dir, "sitebuild.yaml")) {
			t.Errorf("config should be reported as skipped:\n%s", stdout.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv()
		flags := &initFlags{common: commonFlags{quiet: true}}
		if err := runInit([]string{t.TempDir()}, flags, env); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout.Len() != 0 {
			t.Errorf("quiet init wrote %q", stdout.String())
		}
	})
}
