package apigen

import (
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// PackageName returns the name of the Go package in dir. When dir holds no
// loadable package the base name of dir is used.
func PackageName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	res, err := packages.Load(&packages.Config{
		Mode: packages.NeedName,
		Dir:  abs,
	}, ".")
	if err == nil && len(res) == 1 && res[0].Name != "" {
		return res[0].Name
	}
	return filepath.Base(abs)
}
