// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup fetches gene and protein documents from the HGNC and EBI
// Proteins REST APIs. A non-success HTTP status never surfaces as an error:
// it is degraded to a placeholder document carrying only the status code.
package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Jeffail/gabs"
	"go.uber.org/zap"

	"github.com/pdiddy/gene-report/internal/httputil"
	"github.com/pdiddy/gene-report/pkg/types"
)

// Client issues one blocking GET per lookup against the configured bases.
type Client struct {
	HTTP   *http.Client
	Config types.LookupConfig
	Logger *zap.SugaredLogger
}

// NewClient returns a Client with an HTTP client honouring cfg.Timeout.
func NewClient(cfg types.LookupConfig, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Logger: logger,
	}
}

// Degraded returns the placeholder document used when an upstream call
// answers with a non-success status: {"name": "<status>"}.
func Degraded(status int) *gabs.Container {
	doc := gabs.New()
	doc.Set(strconv.Itoa(status), "name")
	return doc
}

// IsDegraded reports whether doc is a placeholder built by Degraded.
func IsDegraded(doc *gabs.Container) bool {
	m, ok := doc.Data().(map[string]interface{})
	if !ok || len(m) != 1 {
		return false
	}
	name, ok := m["name"].(string)
	if !ok {
		return false
	}
	_, err := strconv.Atoi(name)
	return err == nil
}

// fetch GETs base/segment and parses the JSON body. Transport and decode
// failures are returned as errors; non-2xx statuses are degraded.
func (c *Client) fetch(ctx context.Context, base, segment string) (*gabs.Container, error) {
	reqURL := strings.TrimRight(base, "/") + "/" + url.PathEscape(segment)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.Logger.Warnw("upstream returned non-success status", "url", reqURL, "status", resp.StatusCode)
		return Degraded(resp.StatusCode), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", reqURL, err)
	}
	doc, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, fmt.Errorf("parsing response from %s: %w", reqURL, err)
	}
	return doc, nil
}
