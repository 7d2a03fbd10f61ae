package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/model"
)

// RetrieveResult fetches one page of a computed execution result. Offset and
// limit carry one entry per dimension; nil means the server default window.
func (c *Client) RetrieveResult(ctx context.Context, workspaceID, resultID string, offset, limit []int) (*model.ExecutionResult, error) {
	if resultID == "" {
		return nil, fmt.Errorf("result id is required")
	}

	path := fmt.Sprintf(
		"/api/v1/actions/workspaces/%s/execution/afm/execute/result/%s",
		url.PathEscape(workspaceID), url.PathEscape(resultID),
	)

	query := url.Values{}
	if len(offset) > 0 {
		query.Set("offset", joinInts(offset))
	}
	if len(limit) > 0 {
		query.Set("limit", joinInts(limit))
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result model.ExecutionResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
