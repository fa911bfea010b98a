package apigen

import (
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"go.uber.org/zap"
)

// Defaults are used for the parts of the base URL the document leaves out.
type Defaults struct {
	Protocol string
	Host     string
	BasePath string
}

var schemeRe = regexp.MustCompile(`^https?://`)

// BaseURL derives the base URL of the generated client.
//
// Without a host in the document the defaults are used entirely. A host
// that carries a scheme is used as is, otherwise the default protocol is
// prepended. The document's basePath follows the host. A trailing slash is
// dropped since operation paths start with one.
func BaseURL(doc *openapi2.T, def Defaults, logger *zap.Logger) string {
	var base string
	switch {
	case doc.Host == "":
		base = def.Protocol + "://" + def.Host + def.BasePath
		logger.Warn("swagger document has no host, using defaults", zap.String("baseUrl", base))
	case schemeRe.MatchString(doc.Host):
		base = doc.Host + doc.BasePath
	default:
		base = def.Protocol + "://" + doc.Host + doc.BasePath
		logger.Warn("swagger document host has no protocol, using default",
			zap.String("protocol", def.Protocol))
	}
	base = strings.TrimSuffix(base, "/")
	logger.Info("base URL", zap.String("baseUrl", base))
	return base
}
