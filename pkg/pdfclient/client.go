/**
 * @description
 * This package provides a client for the external PDF filling service. The
 * remittance-service never renders documents itself: it posts a template name
 * plus a flat field map and receives the filled document as a byte stream
 * (the quote confirmation a customer downloads).
 *
 * @dependencies
 * - net/http, encoding/json, io: Standard Go libraries.
 */
package pdfclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRenderFailed is returned whenever a filled document cannot be produced.
var ErrRenderFailed = errors.New("pdf render failed")

// maxDocumentBytes caps the response read so a misbehaving upstream cannot
// exhaust memory.
const maxDocumentBytes = 16 << 20

// Client is a client for the PDF filling HTTP service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new PDF service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type renderRequest struct {
	Template string            `json:"template"`
	Fields   map[string]string `json:"fields"`
}

// Render fills the named template with the given fields and returns the
// resulting document bytes.
func (c *Client) Render(ctx context.Context, template string, fields map[string]string) ([]byte, error) {
	payload, err := json.Marshal(renderRequest{Template: template, Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrRenderFailed, err)
	}

	endpoint := c.BaseURL + "/v1/render"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrRenderFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: render service returned status %d", ErrRenderFailed, resp.StatusCode)
	}

	doc, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRenderFailed, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrRenderFailed)
	}
	return doc, nil
}
