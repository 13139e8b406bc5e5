package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

// ClearLikeCache only sends the filters that are set.
func (c *Client) ClearLikeCache(ctx context.Context, targetType, targetID string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpClearLikeCache, Args{Fields: map[string]string{
		"targetType": targetType,
		"targetId":   targetID,
	}})
}

func (c *Client) ClearCommentCache(ctx context.Context, articleID string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpClearCommentCache, Args{Fields: map[string]string{"articleId": articleID}})
}

func (c *Client) RefreshCache(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpRefreshCache, Args{})
}

func (c *Client) SyncLikeData(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpSyncLikeData, Args{})
}

func (c *Client) SyncCommentData(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpSyncCommentData, Args{})
}

func (c *Client) FetchSyncStatus(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchSyncStatus, Args{})
}

func (c *Client) BatchUpdateLikes(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpBatchUpdateLikes, Args{Body: data})
}

func (c *Client) BatchUpdateComments(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpBatchUpdateComments, Args{Body: data})
}

func (c *Client) BatchUpdateMoments(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpBatchUpdateMoments, Args{Body: data})
}
