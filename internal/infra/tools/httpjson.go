package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"toolbox/internal/domain"
)

const maxResponseBytes = 1 << 20

// getJSON issues a GET to endpoint with query and decodes the JSON body
// into out. Transport failures and non-2xx statuses map to UNAVAILABLE.
func getJSON(ctx context.Context, client domain.HTTPDoer, op, endpoint string, query url.Values, out any) error {
	target, err := url.Parse(endpoint)
	if err != nil {
		return domain.E(domain.CodeFailedPrecond, op, fmt.Sprintf("invalid endpoint %q", endpoint), err)
	}
	if len(query) > 0 {
		merged := target.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}
		target.RawQuery = merged.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return domain.E(domain.CodeInternal, op, "", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Wrap(domain.CodeCanceled, op, ctxErr)
		}
		return domain.E(domain.CodeUnavailable, op, err.Error(), domain.ErrUpstreamFailed)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.E(domain.CodeUnavailable, op, err.Error(), domain.ErrUpstreamFailed)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.E(domain.CodeUnavailable, op, fmt.Sprintf("upstream returned %s", resp.Status), domain.ErrUpstreamFailed)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.E(domain.CodeUnavailable, op, fmt.Sprintf("decode upstream response: %v", err), domain.ErrUpstreamFailed)
	}
	return nil
}

// joinPath appends a path segment to endpoint.
func joinPath(endpoint, segment string) string {
	joined, err := url.JoinPath(endpoint, segment)
	if err != nil {
		return endpoint + "/" + url.PathEscape(segment)
	}
	return joined
}
