package interaction

import (
	"context"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

func (c *Client) FetchModerationPending(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationPending, Args{Params: params})
}

func (c *Client) FetchModerationPendingPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationPendingPage, Args{Params: params})
}

func (c *Client) ApproveModerationContent(ctx context.Context, ids []string, reason string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpApproveModerationContent, Args{IDs: ids, Reason: reason})
}

func (c *Client) RejectModerationContent(ctx context.Context, ids []string, reason string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpRejectModerationContent, Args{IDs: ids, Reason: reason})
}

func (c *Client) FetchModerationRules(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationRules, Args{Params: params})
}

func (c *Client) FetchModerationRulesPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationRulesPage, Args{Params: params})
}

func (c *Client) CreateModerationRule(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpCreateModerationRule, Args{Body: data})
}

func (c *Client) UpdateModerationRule(ctx context.Context, id string, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpUpdateModerationRule, Args{ID: id, Body: data})
}

func (c *Client) DeleteModerationRules(ctx context.Context, ids []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDeleteModerationRules, Args{IDs: ids})
}

func (c *Client) EnableModerationRule(ctx context.Context, id string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpEnableModerationRule, Args{ID: id})
}

func (c *Client) DisableModerationRule(ctx context.Context, id string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDisableModerationRule, Args{ID: id})
}

func (c *Client) FetchModerationLogs(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationLogs, Args{Params: params})
}

func (c *Client) FetchModerationLogsPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationLogsPage, Args{Params: params})
}

func (c *Client) FetchModerationStats(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationStats, Args{Params: params})
}

func (c *Client) FetchModerationTrend(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchModerationTrend, Args{Params: params})
}
