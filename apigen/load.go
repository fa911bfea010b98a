package apigen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi2"
	"go.uber.org/zap"
)

// Source says where to read the swagger document from. URL is tried first;
// File is the fallback.
type Source struct {
	URL  string
	File string
}

// LoadDocument loads the swagger document from src.URL and falls back to
// src.File on any failure, including a non-2xx status.
func LoadDocument(ctx context.Context, client *http.Client, src Source, logger *zap.Logger) (*openapi2.T, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if src.URL == "" && src.File == "" {
		return nil, fmt.Errorf("no swagger document source")
	}

	if src.URL != "" {
		logger.Info("loading swagger document online", zap.String("url", src.URL))
		doc, err := fetchDocument(ctx, client, src.URL)
		if err == nil {
			logger.Info("loaded swagger document online")
			return doc, nil
		}
		if src.File == "" {
			return nil, err
		}
		logger.Warn("failed to load swagger document online, using local file",
			zap.String("file", src.File), zap.Error(err))
	}

	data, err := os.ReadFile(src.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read swagger document: %w", err)
	}
	return ParseDocument(data)
}

func fetchDocument(ctx context.Context, client *http.Client, url string) (*openapi2.T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read swagger document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a swagger 2.0 document in JSON.
func ParseDocument(data []byte) (*openapi2.T, error) {
	var doc openapi2.T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse swagger document: %w", err)
	}
	return &doc, nil
}
