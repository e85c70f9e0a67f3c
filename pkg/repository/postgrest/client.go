package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/luna/pkg/domain/interfaces"
	"github.com/m-mizutani/luna/pkg/domain/types"
	"github.com/m-mizutani/luna/pkg/infra"
	"github.com/m-mizutani/luna/pkg/repository"
	"github.com/m-mizutani/luna/pkg/utils/safe"
)

const (
	tableOrgs          = "orgs"
	tableRepos         = "repos"
	tableWebhookEvents = "webhook_events"

	preferUpsert = "resolution=merge-duplicates,return=representation"
	preferInsert = "return=minimal"
)

// Client is an interfaces.Store backed by a PostgREST endpoint (e.g. Supabase).
// Uniqueness of github_org_id and github_repo_id must be enforced by the database.
type Client struct {
	baseURL    *url.URL
	serviceKey types.StoreServiceKey
	httpClient infra.HTTPClient
}

var _ interfaces.Store = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL types.StoreURL, serviceKey types.StoreServiceKey, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "store URL is empty")
	}
	if serviceKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "store service key is empty")
	}

	u, err := url.Parse(string(baseURL))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid store URL",
			goerr.V("url", baseURL),
			goerr.V("error", err.Error()),
		)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "store URL must be http or https",
			goerr.V("url", baseURL),
		)
	}

	client := &Client{
		baseURL:    u,
		serviceKey: serviceKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type request struct {
	method string
	table  string
	query  url.Values
	prefer string
	body   any
}

// do sends req and decodes a 2xx response body into out if out is not nil.
// A non-2xx response is returned as repository.ErrStoreRejected with the status and body text.
func (x *Client) do(ctx context.Context, req *request, out any) error {
	endpoint := x.baseURL.JoinPath("rest", "v1", req.table)
	if req.query != nil {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body", goerr.V("table", req.table))
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return goerr.Wrap(err, "failed to create store request",
			goerr.V("method", req.method),
			goerr.V("table", req.table),
		)
	}

	key := string(x.serviceKey)
	httpReq.Header.Set("apikey", key)
	httpReq.Header.Set("Authorization", "Bearer "+key)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.prefer != "" {
		httpReq.Header.Set("Prefer", req.prefer)
	}

	resp, err := x.httpClient.Do(httpReq)
	if err != nil {
		return goerr.Wrap(err, "failed to send store request",
			goerr.V("method", req.method),
			goerr.V("table", req.table),
		)
	}
	defer safe.Close(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read store response",
			goerr.V("method", req.method),
			goerr.V("table", req.table),
			goerr.V("status", resp.StatusCode),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := strings.TrimSpace(string(respBody))
		return goerr.Wrap(repository.ErrStoreRejected,
			fmt.Sprintf("%s %s failed (%d):\n%s", req.method, req.table, resp.StatusCode, text),
			goerr.V("method", req.method),
			goerr.V("table", req.table),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", text),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return goerr.Wrap(err, "failed to decode store response",
			goerr.V("table", req.table),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
