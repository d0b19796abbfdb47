// Package registry discovers on-disk model bundles. A bundle is a
// subdirectory of the models dir named after its direction ("en-hi")
// containing a tokenizer definition and a quantized model artifact.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"lingod/internal/common/fsutil"
	"lingod/pkg/types"
)

const (
	// TokenizerFile is the tokenizer definition filename inside a bundle dir.
	TokenizerFile = "tokenizer.json"
	// ModelFile is the quantized artifact filename inside a bundle dir.
	ModelFile = "model.mtq"
)

// LoadDir scans a directory for bundle subdirectories and returns a spec per
// complete bundle. Entries that are not directories, have an invalid
// direction name, or are missing either file are skipped.
func LoadDir(dir string) ([]types.BundleSpec, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var specs []types.BundleSpec
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		d, err := types.ParseDirection(e.Name())
		if err != nil {
			continue
		}
		bundleDir := filepath.Join(abs, e.Name())
		tokPath := filepath.Join(bundleDir, TokenizerFile)
		mdlPath := filepath.Join(bundleDir, ModelFile)
		if !fsutil.PathExists(tokPath) || !fsutil.PathExists(mdlPath) {
			continue
		}
		specs = append(specs, types.BundleSpec{
			Direction:     d,
			Dir:           bundleDir,
			TokenizerPath: tokPath,
			ModelPath:     mdlPath,
		})
	}
	return specs, nil
}
