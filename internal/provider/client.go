package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/normalize"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/errors"
	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

// apiClient is the shared authenticated JSON transport used by every
// HTTP-backed provider. It maps transport, status and decoding failures
// onto the closed error-code set so providers never leak raw errors.
type apiClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	name    string
}

func newAPIClient(name, baseURL, apiKey string, timeout time.Duration) *apiClient {
	return &apiClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		name:    name,
	}
}

// getJSON issues an authenticated GET against path with the given query
// parameters and decodes the response body into a Document.
func (c *apiClient) getJSON(ctx context.Context, path string, query url.Values) (normalize.Document, error) {
	return c.doJSON(ctx, http.MethodGet, path, query, nil)
}

// postJSON issues an authenticated POST with a JSON body.
func (c *apiClient) postJSON(ctx context.Context, path string, body interface{}) (normalize.Document, error) {
	return c.doJSON(ctx, http.MethodPost, path, nil, body)
}

func (c *apiClient) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}) (normalize.Document, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, c.name+": request marshal failed")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, c.name+": request build failed")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, c.name+": request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamUnavailable, c.name+": response read failed")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.CodeNoData, c.name+": no record found")
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, errors.Newf(errors.CodeMissingConfig, "%s: rejected credentials (status %d)", c.name, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, errors.Newf(errors.CodeAPIUnavailable, "%s: upstream error (status %d)", c.name, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, errors.Newf(errors.CodeInvalidInput, "%s: rejected request (status %d)", c.name, resp.StatusCode)
	}

	doc := normalize.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeUpstreamParseError,
			fmt.Sprintf("%s: malformed response body", c.name))
	}
	return doc, nil
}

// getRaw fetches a binary document (order PDFs) and returns its bytes and
// content type.
func (c *apiClient) getRaw(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, c.name+": request build failed")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeUpstreamUnavailable, c.name+": download failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", errors.New(errors.CodeNoData, c.name+": document not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Newf(errors.CodeAPIUnavailable, "%s: download error (status %d)", c.name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20))
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeUpstreamUnavailable, c.name+": download read failed")
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// probe issues a HEAD request against the base URL for TestConnection.
func (c *apiClient) probe(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, c.name+": probe build failed")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeUpstreamUnavailable, c.name+": unreachable")
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return errors.Newf(errors.CodeAPIUnavailable, "%s: unhealthy (status %d)", c.name, resp.StatusCode)
	}
	return nil
}

// failedLookup maps an operation error onto a failed Lookup attributed to
// the provider.
func failedLookup(err error, providerName string) court.Lookup {
	return court.LookupFailed(errors.GetCode(err), err.Error(), providerName)
}
