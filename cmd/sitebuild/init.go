package main

import (
	"fmt"
	"path/filepath"

	"github.com/evanshlee/evanshlee.github.io/internal/assets"
	"github.com/evanshlee/evanshlee.github.io/internal/config"
	"github.com/evanshlee/evanshlee.github.io/internal/fileutil"
)

// runInit scaffolds a site in the given directory. Existing files are
// reported as skipped and left untouched.
func runInit(positional []string, flags *initFlags, env *Environment) error {
	dir := "."
	if len(positional) > 0 {
		dir = positional[0]
	}

	files, err := assets.WriteStarter(dir)
	if err != nil {
		return fmt.Errorf("writing starter files: %w", err)
	}

	cfgFile, err := writeStarterConfig(dir)
	if err != nil {
		return err
	}
	files = append(files, cfgFile)

	if flags.common.quiet {
		return nil
	}
	for _, f := range files {
		if f.Skipped {
			fmt.Fprintf(env.Stdout, "Skipped %s (exists)\n", f.Path)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", f.Path)
		}
	}
	fmt.Fprintf(env.Stdout, "Run 'sitebuild build' in %s to render the site\n", dir)
	return nil
}

// writeStarterConfig writes the default configuration unless one exists.
func writeStarterConfig(dir string) (assets.StarterFile, error) {
	path := filepath.Join(dir, defaultConfigFile)
	if fileutil.FileExists(path) {
		return assets.StarterFile{Path: path, Skipped: true}, nil
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return assets.StarterFile{}, fmt.Errorf("encoding starter config: %w", err)
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return assets.StarterFile{}, fmt.Errorf("writing starter config: %w", err)
	}
	return assets.StarterFile{Path: path}, nil
}
