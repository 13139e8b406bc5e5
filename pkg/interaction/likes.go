package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

func (c *Client) FetchLikes(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchLikes, Args{Params: params})
}

func (c *Client) FetchLikesPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchLikesPage, Args{Params: params})
}

func (c *Client) CreateLike(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpCreateLike, Args{Body: data})
}

func (c *Client) UpdateLike(ctx context.Context, id string, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpUpdateLike, Args{ID: id, Body: data})
}

// DeleteLikes sends ids as repeated ids= parameters. An empty list is sent as an empty query.
func (c *Client) DeleteLikes(ctx context.Context, ids []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDeleteLikes, Args{IDs: ids})
}

func (c *Client) FetchLikeStats(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchLikeStats, Args{Params: params})
}

// FetchLikeCountsByTarget sends targetIds comma-joined, unlike the delete endpoints.
func (c *Client) FetchLikeCountsByTarget(ctx context.Context, targetType string, targetIDs []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchLikeCountsByTarget, Args{
		IDs:    targetIDs,
		Fields: map[string]string{"targetType": targetType},
	})
}
