package mews

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client speaks the connector API. Every call is a POST with the access and
// client tokens inlined into the body, as the API requires.
type Client struct {
	httpc       *resty.Client
	accessToken string
	clientToken string
}

func NewClient(baseURL, accessToken, clientToken string) *Client {
	return &Client{
		httpc: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(15 * time.Second),
		accessToken: accessToken,
		clientToken: clientToken,
	}
}

func (c *Client) post(ctx context.Context, path string, body map[string]any, out any) error {
	payload := map[string]any{
		"AccessToken": c.accessToken,
		"ClientToken": c.clientToken,
	}
	for k, v := range body {
		payload[k] = v
	}

	req := c.httpc.R().SetContext(ctx).SetBody(payload)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		return errors.Wrap(err, "call connector api")
	}
	if resp.IsError() {
		snippet := resp.Body()
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), snippet)
	}
	return nil
}
