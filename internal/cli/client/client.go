package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/types"
)

// APIClient wraps a Hertz client for talking to the store backend.
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL ensures a scheme and strips any path or trailing
// slash.
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// do sends one request and decodes the JSON response into out when out
// is non-nil. Non-2xx responses surface the API's error message.
func (c *APIClient) do(ctx context.Context, method, uri string, body, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(c.server + uri)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		var apiErr types.ErrorBody
		if err := sonic.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Message, statusCode)
		}
		return fmt.Errorf("request failed with HTTP status: %d", statusCode)
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// ListProducts lists the catalog, optionally filtered by exact brand
// or category.
func (c *APIClient) ListProducts(ctx context.Context, brand, category string) ([]types.Product, error) {
	uri := endpointProducts
	query := url.Values{}
	if brand != "" {
		query.Set("brand", brand)
	}
	if category != "" {
		query.Set("category", category)
	}
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var products []types.Product
	if err := c.do(ctx, consts.MethodGet, uri, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *APIClient) GetProduct(ctx context.Context, id int64) (*types.Product, error) {
	var product types.Product
	if err := c.do(ctx, consts.MethodGet, fmt.Sprintf(endpointProductsByID, id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes one product by id.
func (c *APIClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, consts.MethodDelete, fmt.Sprintf(endpointProductsByID, id), nil, nil)
}

// Chat sends one user turn and returns the assistant's reply.
func (c *APIClient) Chat(ctx context.Context, sessionID, message string) (*types.ChatResponse, error) {
	reqBody := types.ChatRequest{
		SessionID: sessionID,
		Message:   message,
	}

	var chatResp types.ChatResponse
	if err := c.do(ctx, consts.MethodPost, endpointChat, reqBody, &chatResp); err != nil {
		return nil, err
	}
	return &chatResp, nil
}

// GetHistory fetches a session's messages, oldest first.
func (c *APIClient) GetHistory(ctx context.Context, sessionID string, limit int) ([]types.ChatHistoryItem, error) {
	uri := fmt.Sprintf(endpointChatHistory, url.PathEscape(sessionID))
	if limit > 0 {
		uri = fmt.Sprintf(endpointChatLimited, url.PathEscape(sessionID), limit)
	}

	var history []types.ChatHistoryItem
	if err := c.do(ctx, consts.MethodGet, uri, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ClearHistory purges a session and reports how many messages were
// removed.
func (c *APIClient) ClearHistory(ctx context.Context, sessionID string) (int64, error) {
	var deleteResp types.DeleteHistoryResponse
	uri := fmt.Sprintf(endpointChatHistory, url.PathEscape(sessionID))
	if err := c.do(ctx, consts.MethodDelete, uri, nil, &deleteResp); err != nil {
		return 0, err
	}
	return deleteResp.DeletedMessages, nil
}
