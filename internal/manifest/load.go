package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/theoryreg/internal/ctxlog"
	"github.com/vk/theoryreg/internal/fsutil"
)

// Load parses every .hcl manifest under dir and returns the combined model.
// Two manifests declaring the same producer name is an error.
func Load(ctx context.Context, dir string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading producer manifests", "path", dir)

	filePaths, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("walking manifest directory %s: %w", dir, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("no .hcl manifest files found", "path", dir)
	}

	model := &Model{Producers: make(map[string]*Producer)}
	parser := hclparse.NewParser()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing manifest %s: %w", filePath, diags)
		}

		var f file
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("decoding manifest %s: %w", filePath, diags)
		}

		for _, block := range f.Producers {
			if _, exists := model.Producers[block.Name]; exists {
				return nil, fmt.Errorf("manifest %s: producer %q declared more than once", filePath, block.Name)
			}
			p, err := translateProducer(block)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", filePath, err)
			}
			model.Producers[block.Name] = p
		}
		logger.Debug("loaded manifest file", "file", filePath)
	}

	logger.Info("producer manifests loaded", "producers", len(model.Producers))
	return model, nil
}
