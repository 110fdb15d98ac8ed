package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
	"github.com/specialistvlad/fanoutgo/internal/fsutil"
	"github.com/specialistvlad/fanoutgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads cast manifests from the given paths, parses them, and
// translates them into the format-agnostic model. A path may be a single
// .hcl file or a directory searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	filePaths, err := l.resolveFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(filePaths) == 0 {
		return nil, nil, fmt.Errorf("no .hcl cast files found in %v", paths)
	}
	logger.Debug("Found HCL cast files to load.", "files", filePaths)

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		var cast schema.CastConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cast); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode cast file %s: %w", filePath, diags)
		}

		if err := l.translateCast(model, &cast, filePath); err != nil {
			return nil, nil, err
		}
		logger.Debug("Loaded cast definitions from HCL file.", "file", filePath)
	}

	logger.Info("Cast manifest loaded.",
		"producers", len(model.Producers),
		"displayers", len(model.Displayers),
	)
	return model, NewConverter(), nil
}

// resolveFiles expands each path into the list of .hcl files it denotes.
func (l *Loader) resolveFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cast path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to walk cast directory %s: %w", path, err)
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
