/**
 * @description
 * This package provides a client for the object-storage gateway used for
 * document uploads. The flow is presigned: the service requests an upload URL,
 * the browser uploads directly to storage, and only the resulting object key is
 * recorded against the order.
 *
 * @dependencies
 * - bytes, context, encoding/json, net/http, time: Standard Go libraries.
 */
package storageclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is a client for the storage gateway API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new storage gateway client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PresignRequest is the payload asking the gateway for an upload URL.
type PresignRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// PresignResponse carries the presigned URL the client uploads to and the
// object key the service records.
type PresignResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

// PresignUpload requests a presigned upload URL for one document.
func (c *Client) PresignUpload(ctx context.Context, fileName, contentType string) (*PresignResponse, error) {
	body, err := json.Marshal(PresignRequest{FileName: fileName, ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/uploads/presign", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-storage-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute presign request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read presign response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("storage gateway returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var presign PresignResponse
	if err := json.Unmarshal(bodyBytes, &presign); err != nil {
		return nil, fmt.Errorf("failed to decode presign response: %w", err)
	}
	return &presign, nil
}

// DeleteObject removes a stored object by key.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	endpoint := fmt.Sprintf("%s/v1/objects/%s", c.BaseURL, url.PathEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("x-storage-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage gateway returned status %d deleting object", resp.StatusCode)
	}
	return nil
}
