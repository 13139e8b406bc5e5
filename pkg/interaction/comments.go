package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

func (c *Client) FetchComments(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchComments, Args{Params: params})
}

func (c *Client) FetchCommentsPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchCommentsPage, Args{Params: params})
}

func (c *Client) CreateComment(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpCreateComment, Args{Body: data})
}

func (c *Client) UpdateComment(ctx context.Context, id string, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpUpdateComment, Args{ID: id, Body: data})
}

func (c *Client) DeleteComments(ctx context.Context, ids []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDeleteComments, Args{IDs: ids})
}

// ApproveComments omits reason from the body when it is empty.
func (c *Client) ApproveComments(ctx context.Context, ids []string, reason string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpApproveComments, Args{IDs: ids, Reason: reason})
}

// RejectComments always includes reason in the body.
func (c *Client) RejectComments(ctx context.Context, ids []string, reason string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpRejectComments, Args{IDs: ids, Reason: reason})
}

func (c *Client) FetchCommentStats(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchCommentStats, Args{Params: params})
}

func (c *Client) FetchCommentCountsByArticle(ctx context.Context, articleIDs []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchCommentCountsByArticle, Args{IDs: articleIDs})
}
