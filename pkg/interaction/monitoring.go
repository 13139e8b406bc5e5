package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

func (c *Client) FetchInteractionHealth(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionHealth, Args{})
}

func (c *Client) FetchInteractionMetrics(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionMetrics, Args{})
}

func (c *Client) FetchInteractionEvents(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionEvents, Args{Params: params})
}

func (c *Client) FetchInteractionEventsPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionEventsPage, Args{Params: params})
}

func (c *Client) FetchInteractionErrors(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionErrors, Args{Params: params})
}

func (c *Client) FetchInteractionErrorsPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchInteractionErrorsPage, Args{Params: params})
}

func (c *Client) FetchPerformanceMetrics(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchPerformanceMetrics, Args{Params: params})
}

func (c *Client) FetchDatabaseMetrics(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchDatabaseMetrics, Args{})
}

func (c *Client) FetchCacheMetrics(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchCacheMetrics, Args{})
}

func (c *Client) FetchJvmMetrics(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchJvmMetrics, Args{})
}

func (c *Client) FetchServiceMetrics(ctx context.Context) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchServiceMetrics, Args{})
}
