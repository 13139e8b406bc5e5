package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

// Export operations stream the body; read it with Response.RawBody.

func (c *Client) ExportLikes(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpExportLikes, Args{Params: params})
}

func (c *Client) ExportComments(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpExportComments, Args{Params: params})
}

func (c *Client) ExportMoments(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpExportMoments, Args{Params: params})
}

func (c *Client) ExportModerationLogs(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpExportModerationLogs, Args{Params: params})
}
