// Package apigen generates the operation table and methods of the BaaS
// client from the platform's swagger 2.0 document.
package apigen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Config struct {
	Source   Source
	Defaults Defaults

	// Output is the path of the generated Go file.
	Output string

	// Package defaults to the package already present in the directory of
	// Output.
	Package string

	// RoutesYAML, if set, is the path of a YAML listing of the operations.
	RoutesYAML string

	// CA, if set, is copied to CADest, by default next to Output.
	CA     string
	CADest string

	// HTTPClient fetches the online document. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Generate runs the whole pipeline: load the document, derive the base URL,
// build the model, write the Go file and the optional side outputs.
func Generate(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if cfg.Output == "" {
		return fmt.Errorf("no output file")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := LoadDocument(ctx, cfg.HTTPClient, cfg.Source, logger)
	if err != nil {
		return err
	}
	baseURL := BaseURL(doc, cfg.Defaults, logger)

	pkg := cfg.Package
	if pkg == "" {
		pkg = PackageName(filepath.Dir(cfg.Output))
	}
	model, err := BuildModel(doc, pkg, baseURL)
	if err != nil {
		return err
	}

	src, err := Render(model)
	if err != nil {
		return err
	}
	changed, err := writeIfChanged(cfg.Output, src)
	if err != nil {
		return err
	}
	logger.Info("generated client",
		zap.String("file", cfg.Output),
		zap.Int("operations", len(model.Operations)),
		zap.Bool("changed", changed),
	)

	if cfg.RoutesYAML != "" {
		var buf bytes.Buffer
		if err := WriteRoutesYAML(&buf, model); err != nil {
			return err
		}
		if _, err := writeIfChanged(cfg.RoutesYAML, buf.Bytes()); err != nil {
			return err
		}
		logger.Info("generated routes", zap.String("file", cfg.RoutesYAML))
	}

	if cfg.CA != "" {
		dest := cfg.CADest
		if dest == "" {
			dest = filepath.Join(filepath.Dir(cfg.Output), filepath.Base(cfg.CA))
		}
		if err := CopyCA(cfg.CA, dest); err != nil {
			return err
		}
		logger.Info("copied CA certificate", zap.String("file", dest))
	}
	return nil
}

// writeIfChanged leaves the file untouched when it already has data.
func writeIfChanged(path string, data []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if err == nil && bytes.Equal(old, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
