package interaction

import (
	"context"
	"io"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

// AttachmentField is the multipart field name the backend reads uploads from.
const AttachmentField = "file"

func (c *Client) FetchMoments(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchMoments, Args{Params: params})
}

func (c *Client) FetchMomentsPage(ctx context.Context, params Params) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchMomentsPage, Args{Params: params})
}

func (c *Client) CreateMoment(ctx context.Context, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpCreateMoment, Args{Body: data})
}

func (c *Client) UpdateMoment(ctx context.Context, id string, data any) (httpclient.Response, error) {
	return c.Invoke(ctx, OpUpdateMoment, Args{ID: id, Body: data})
}

func (c *Client) DeleteMoments(ctx context.Context, ids []string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDeleteMoments, Args{IDs: ids})
}

func (c *Client) FetchMomentAttachments(ctx context.Context, momentID string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpFetchMomentAttachments, Args{ID: momentID})
}

// UploadMomentAttachment posts file as multipart/form-data under the "file" field.
func (c *Client) UploadMomentAttachment(ctx context.Context, momentID, fileName string, file io.Reader) (httpclient.Response, error) {
	return c.Invoke(ctx, OpUploadMomentAttachment, Args{
		ID:   momentID,
		File: &httpclient.FilePart{Field: AttachmentField, FileName: fileName, Reader: file},
	})
}

func (c *Client) DeleteMomentAttachment(ctx context.Context, momentID, attachmentID string) (httpclient.Response, error) {
	return c.Invoke(ctx, OpDeleteMomentAttachment, Args{ID: momentID, SubID: attachmentID})
}
