package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/model"
)

// AIChat asks the AI chat endpoint a question in the given workspace
func (c *Client) AIChat(ctx context.Context, workspaceID string, req *model.ChatRequest) (*model.ChatResult, error) {
	if err := validateRequest(req, "ChatRequest"); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/v1/actions/workspaces/%s/ai/chat", url.PathEscape(workspaceID))

	var result model.ChatResult
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AIChatHistory fetches or manipulates the chat thread of the workspace
func (c *Client) AIChatHistory(ctx context.Context, workspaceID string, req *model.ChatHistoryRequest) (*model.ChatHistoryResult, error) {
	if err := validateRequest(req, "ChatHistoryRequest"); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/v1/actions/workspaces/%s/ai/chatHistory", url.PathEscape(workspaceID))

	var result model.ChatHistoryResult
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
