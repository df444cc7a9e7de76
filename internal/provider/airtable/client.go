package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Record is a raw table row: an opaque backend-assigned id plus a
// field-keyed map.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type ListOptions struct {
	FilterByFormula string
	MaxRecords      int
}

// Client is a minimal REST client for a hosted table store addressed by
// table name and record id, with a formula-based filter language.
type Client struct {
	httpc *resty.Client
}

func NewClient(apiKey, baseID string) *Client {
	httpc := resty.New().
		SetBaseURL(defaultBaseURL + "/" + url.PathEscape(baseID)).
		SetAuthToken(apiKey).
		SetTimeout(15 * time.Second)
	return &Client{httpc: httpc}
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	var out []Record
	offset := ""
	for {
		req := c.httpc.R().SetContext(ctx)
		if opts.FilterByFormula != "" {
			req.SetQueryParam("filterByFormula", opts.FilterByFormula)
		}
		if opts.MaxRecords > 0 {
			req.SetQueryParam("maxRecords", strconv.Itoa(opts.MaxRecords))
		}
		if offset != "" {
			req.SetQueryParam("offset", offset)
		}

		var page listResponse
		resp, err := req.SetResult(&page).Get("/" + url.PathEscape(table))
		if err != nil {
			return nil, errors.Wrap(err, "call table store")
		}
		if resp.IsError() {
			return nil, statusErr(resp)
		}
		out = append(out, page.Records...)

		if page.Offset == "" || (opts.MaxRecords > 0 && len(out) >= opts.MaxRecords) {
			return out, nil
		}
		offset = page.Offset
	}
}

// Find fetches a single record by id. A missing record is (nil, nil), not an
// error.
func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	var rec Record
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetResult(&rec).
		Get("/" + url.PathEscape(table) + "/" + url.PathEscape(id))
	if err != nil {
		return nil, errors.Wrap(err, "call table store")
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, statusErr(resp)
	}
	return &rec, nil
}

func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	var rec Record
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": fields}).
		SetResult(&rec).
		Post("/" + url.PathEscape(table))
	if err != nil {
		return nil, errors.Wrap(err, "call table store")
	}
	if resp.IsError() {
		return nil, statusErr(resp)
	}
	return &rec, nil
}

func (c *Client) Update(ctx context.Context, table, id string, fields map[string]any) (*Record, error) {
	var rec Record
	resp, err := c.httpc.R().
		SetContext(ctx).
		SetBody(map[string]any{"fields": fields}).
		SetResult(&rec).
		Patch("/" + url.PathEscape(table) + "/" + url.PathEscape(id))
	if err != nil {
		return nil, errors.Wrap(err, "call table store")
	}
	if resp.IsError() {
		return nil, statusErr(resp)
	}
	return &rec, nil
}

func statusErr(resp *resty.Response) error {
	body := resp.Body()
	if len(body) > 512 {
		body = body[:512]
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), body)
}
