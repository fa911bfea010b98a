package apigen

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// CopyCA copies the trust anchor certificate at src to dst, creating the
// directory of dst. The source must hold at least one PEM certificate.
func CopyCA(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read CA certificate: %w", err)
	}
	if block, _ := pem.Decode(data); block == nil || block.Type != "CERTIFICATE" {
		return fmt.Errorf("%s does not hold a PEM certificate", src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
