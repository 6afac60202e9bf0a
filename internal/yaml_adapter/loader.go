// Package yaml_adapter provides the YAML implementation of the
// config.Loader interface, mirroring the HCL schema key for key.
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/fsutil"
)

// Extensions are the file extensions the loader reads.
var Extensions = []string{".yaml", ".yml"}

// fileRoot is the schema of a single YAML configuration file.
type fileRoot struct {
	Assemblies []string     `yaml:"assemblies"`
	Startup    string       `yaml:"startup"`
	Naming     *namingBlock `yaml:"naming"`
}

type namingBlock struct {
	Strict       *bool             `yaml:"strict"`
	NamespaceMap map[string]string `yaml:"namespace_map"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML file found under paths, in order, and merges them
// into one model. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		model.Merge(translate(root))
	}

	logger.Debug("YAML loading complete.", "files", len(files), "assemblies", len(model.Assemblies), "startup", model.Startup)
	return model, nil
}

func decodeFile(path string) (*fileRoot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	var root fileRoot
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	return &root, nil
}

func translate(root *fileRoot) *config.Model {
	model := &config.Model{
		Assemblies: root.Assemblies,
		Startup:    root.Startup,
	}
	if root.Naming != nil {
		model.Naming = config.Naming{
			Strict:       root.Naming.Strict,
			NamespaceMap: root.Naming.NamespaceMap,
		}
	}
	return model
}
