package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"calculator-frontend/internal/frontend"
	"calculator-frontend/internal/types"
)

const (
	calculatePath   = "/api/v1/calculate"
	expressionsPath = "/api/v1/expressions"
)

// Client talks to the calculator's public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient means http.DefaultClient;
// no timeout is applied beyond the caller's context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

var _ frontend.API = (*Client)(nil)

func (c *Client) Submit(ctx context.Context, expression string) (string, error) {
	body, err := json.Marshal(types.CalculateRequest{Expression: expression})
	if err != nil {
		return "", fmt.Errorf("%w: %v", frontend.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", frontend.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp types.CalculateResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.ID.String(), nil
}

func (c *Client) FetchList(ctx context.Context) ([]types.Expression, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+expressionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", frontend.ErrTransport, err)
	}

	var resp types.ExpressionResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if resp.Expressions == nil {
		return []types.Expression{}, nil
	}
	return resp.Expressions, nil
}

// FetchOne accepts both a bare expression object and one wrapped in
// {"expression": ...}; calculator builds differ on this.
func (c *Client) FetchOne(ctx context.Context, id string) (types.Expression, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+expressionsPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return types.Expression{}, fmt.Errorf("%w: %v", frontend.ErrTransport, err)
	}

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return types.Expression{}, err
	}

	var wrapped types.SingleExpressionResponse
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Expression != nil {
		return *wrapped.Expression, nil
	}
	var expr types.Expression
	if err := json.Unmarshal(raw, &expr); err != nil {
		return types.Expression{}, fmt.Errorf("%w: decode expression: %v", frontend.ErrTransport, err)
	}
	return expr, nil
}

// do sends req and decodes a 2xx JSON body into out. Any other status is
// returned as *frontend.APIError carrying the body text.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", frontend.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read error body: %v", frontend.ErrTransport, err)
		}
		return &frontend.APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimRight(string(text), "\n"),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", frontend.ErrTransport, err)
	}
	return nil
}
