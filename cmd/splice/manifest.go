package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no splice.toml found\nplease specify files explicitly, e.g.:\n  splice expand path/to/file.mx"

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Package packageConfig `toml:"package"`
	Expand  expandConfig  `toml:"expand"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type expandConfig struct {
	Include []string `toml:"include"`
}

// IncludeDirs resolves the manifest's include paths against its root.
// An empty include list means the manifest root itself.
func (m *manifest) IncludeDirs() []string {
	if len(m.Config.Expand.Include) == 0 {
		return []string{m.Root}
	}
	dirs := make([]string, 0, len(m.Config.Expand.Include))
	for _, inc := range m.Config.Expand.Include {
		dirs = append(dirs, filepath.Join(m.Root, filepath.FromSlash(inc)))
	}
	return dirs
}

// findManifest walks from startDir to the filesystem root looking for a
// splice.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "splice.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return manifestConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}
