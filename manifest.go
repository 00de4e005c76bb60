package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "Cargo.toml"

// crateInfo is the subset of package metadata the readme needs.
type crateInfo struct {
	Name    string
	License *string
}

// metadataResolver supplies crate metadata to the generator.
type metadataResolver interface {
	Resolve() (crateInfo, error)
}

type cargoManifest struct {
	Package struct {
		Name        string  `toml:"name"`
		License     *string `toml:"license"`
		LicenseFile string  `toml:"license-file"`
		Metadata    struct {
			Readme readmeMetadata `toml:"readme"`
		} `toml:"metadata"`
	} `toml:"package"`
}

// readmeMetadata holds defaults read from [package.metadata.readme].
type readmeMetadata struct {
	Input          string `toml:"input"`
	Output         string `toml:"output"`
	Template       string `toml:"template"`
	Title          *bool  `toml:"title"`
	License        *bool  `toml:"license"`
	IndentHeadings *bool  `toml:"indent-headings"`
}

// cargoProject is a project root together with its decoded manifest.
type cargoProject struct {
	root     string
	manifest cargoManifest
}

// findProjectRoot walks up from start until a directory holding a
// Cargo.toml file is found.
func findProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if isFile(filepath.Join(dir, manifestName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", errNoProject, manifestName, start)
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func loadCargoProject(root string) (*cargoProject, error) {
	path := filepath.Join(root, manifestName)
	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found in '%s'", errNoProject, manifestName, root)
		}
		return nil, fmt.Errorf("%w: %v", errManifest, err)
	}
	if strings.TrimSpace(manifest.Package.Name) == "" {
		return nil, fmt.Errorf("%w: missing package.name in %s", errManifest, path)
	}
	return &cargoProject{root: root, manifest: manifest}, nil
}

// Resolve implements metadataResolver.
func (p *cargoProject) Resolve() (crateInfo, error) {
	pkg := p.manifest.Package
	return crateInfo{Name: pkg.Name, License: pkg.License}, nil
}

func (p *cargoProject) readmeDefaults() readmeMetadata {
	return p.manifest.Package.Metadata.Readme
}

func (p *cargoProject) licenseFile() string {
	return p.manifest.Package.LicenseFile
}
