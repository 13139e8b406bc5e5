package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponse struct {
	status int
	body   []byte
}

func (s *stubResponse) StatusCode() int        { return s.status }
func (s *stubResponse) Header() http.Header    { return http.Header{} }
func (s *stubResponse) Body() []byte           { return s.body }
func (s *stubResponse) RawBody() io.ReadCloser { return io.NopCloser(strings.NewReader(string(s.body))) }

// recordingTransport captures every request and replays a canned result.
type recordingTransport struct {
	requests []*httpclient.Request
	resp     httpclient.Response
	err      error
}

func (r *recordingTransport) Do(_ context.Context, req *httpclient.Request) (httpclient.Response, error) {
	r.requests = append(r.requests, req)
	return r.resp, r.err
}

func newRecording() (*Client, *recordingTransport) {
	rt := &recordingTransport{resp: &stubResponse{status: http.StatusOK, body: []byte(`{}`)}}
	return New(rt), rt
}

func TestEveryOperationIssuesOneRequest(t *testing.T) {
	for _, op := range Operations() {
		t.Run(string(op), func(t *testing.T) {
			c, rt := newRecording()
			_, err := c.Invoke(context.Background(), op, Args{ID: "x1", SubID: "a1"})
			require.NoError(t, err)
			require.Len(t, rt.requests, 1)

			b, _ := Lookup(op)
			assert.Equal(t, b.Method, rt.requests[0].Method)
			assert.NotContains(t, rt.requests[0].Path, "{")
		})
	}
}

func TestOperationTable(t *testing.T) {
	testCases := []struct {
		op     Operation
		method string
		path   string
	}{
		{OpFetchLikes, http.MethodGet, "/interaction/admin/likes"},
		{OpFetchLikesPage, http.MethodGet, "/interaction/admin/likes/page"},
		{OpUpdateLike, http.MethodPut, "/interaction/likes/x1"},
		{OpFetchCommentsPage, http.MethodGet, "/interaction/admin/comments/page"},
		{OpFetchMoments, http.MethodGet, "/content/moments"},
		{OpFetchMomentsPage, http.MethodGet, "/content/moments"},
		{OpDeleteMomentAttachment, http.MethodDelete, "/interaction/moments/x1/attachments/a1"},
		{OpEnableModerationRule, http.MethodPost, "/interaction/admin/moderation/rules/x1/enable"},
		{OpDisableModerationRule, http.MethodPost, "/interaction/admin/moderation/rules/x1/disable"},
		{OpFetchInteractionEventsPage, http.MethodGet, "/interaction/events/page"},
		{OpFetchInteractionErrors, http.MethodGet, "/interaction/errors"},
		{OpFetchJvmMetrics, http.MethodGet, "/interaction/performance/jvm"},
		{OpRefreshCache, http.MethodPost, "/interaction/cache/refresh"},
		{OpFetchSyncStatus, http.MethodGet, "/interaction/sync/status"},
		{OpBatchUpdateMoments, http.MethodPost, "/interaction/moments/batch"},
		{OpExportModerationLogs, http.MethodGet, "/interaction/admin/moderation/logs/export"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.op), func(t *testing.T) {
			c, rt := newRecording()
			_, err := c.Invoke(context.Background(), tc.op, Args{ID: "x1", SubID: "a1"})
			require.NoError(t, err)
			assert.Equal(t, tc.method, rt.requests[0].Method)
			assert.Equal(t, tc.path, rt.requests[0].Path)
		})
	}
	assert.Len(t, Operations(), 63)
}

func TestDeleteLikesRepeatsIDs(t *testing.T) {
	c, rt := newRecording()

	_, err := c.DeleteLikes(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	req := rt.requests[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/interaction/likes", req.Path)
	require.NotNil(t, req.RawQuery)
	assert.Equal(t, "ids=a&ids=b", *req.RawQuery)

	_, err = c.DeleteLikes(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, rt.requests[1].RawQuery)
	assert.Equal(t, "", *rt.requests[1].RawQuery)
}

func TestClearLikeCacheSendsOnlyPresentFields(t *testing.T) {
	c, rt := newRecording()

	_, err := c.ClearLikeCache(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, rt.requests[0].Query)
	assert.Nil(t, rt.requests[0].Body)

	_, err = c.ClearLikeCache(context.Background(), "POST", "")
	require.NoError(t, err)
	assert.Equal(t, url.Values{"targetType": {"POST"}}, rt.requests[1].Query)

	_, err = c.ClearCommentCache(context.Background(), "art-9")
	require.NoError(t, err)
	assert.Equal(t, url.Values{"articleId": {"art-9"}}, rt.requests[2].Query)
}

func TestModerationReasonPlacement(t *testing.T) {
	c, rt := newRecording()

	_, err := c.ApproveComments(context.Background(), []string{"c1"}, "")
	require.NoError(t, err)
	raw, err := json.Marshal(rt.requests[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":["c1"]}`, string(raw))

	_, err = c.RejectComments(context.Background(), []string{"c1", "c2"}, "")
	require.NoError(t, err)
	raw, err = json.Marshal(rt.requests[1].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":["c1","c2"],"reason":""}`, string(raw))

	_, err = c.RejectModerationContent(context.Background(), nil, "spam")
	require.NoError(t, err)
	raw, err = json.Marshal(rt.requests[2].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":[],"reason":"spam"}`, string(raw))
	assert.Equal(t, "/interaction/admin/moderation/reject", rt.requests[2].Path)
}

func TestCountLookupsJoinIDsWithCommas(t *testing.T) {
	c, rt := newRecording()

	_, err := c.FetchLikeCountsByTarget(context.Background(), "MOMENT", []string{"m1", "m2"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"targetType": {"MOMENT"}, "targetIds": {"m1,m2"}}, rt.requests[0].Query)

	_, err = c.FetchCommentCountsByArticle(context.Background(), []string{"a1", "a2", "a3"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"articleIds": {"a1,a2,a3"}}, rt.requests[1].Query)
}

func TestExportRequestsBlob(t *testing.T) {
	c, rt := newRecording()
	params := Params{"from": {"2024-01-01"}}

	_, err := c.ExportLikes(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, httpclient.ResponseBlob, rt.requests[0].ResponseType)
	assert.Equal(t, params, rt.requests[0].Query)

	_, err = c.FetchLikes(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, httpclient.ResponseJSON, rt.requests[1].ResponseType)
}

func TestUploadMomentAttachmentUsesFileField(t *testing.T) {
	c, rt := newRecording()

	_, err := c.UploadMomentAttachment(context.Background(), "m/1", "a.png", strings.NewReader("x"))
	require.NoError(t, err)
	req := rt.requests[0]
	require.NotNil(t, req.File)
	assert.Equal(t, "file", req.File.Field)
	assert.Equal(t, "a.png", req.File.FileName)
	assert.Equal(t, "/interaction/moments/m%2F1/attachments", req.Path)
}

func TestInvokePassesTransportResultThrough(t *testing.T) {
	want := &stubResponse{status: http.StatusBadGateway}
	wantErr := errors.New("boom")
	rt := &recordingTransport{resp: want, err: wantErr}
	c := New(rt)

	resp, err := c.SyncLikeData(context.Background())
	assert.Same(t, want, resp)
	assert.Same(t, wantErr, err)
}

func TestInvokeUnknownOperation(t *testing.T) {
	c, rt := newRecording()

	_, err := c.Invoke(context.Background(), Operation("dropDatabase"), Args{})
	require.ErrorIs(t, err, ErrUnknownOperation)
	assert.Empty(t, rt.requests)
}

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope(&stubResponse{status: 200, body: []byte(`{"code":200,"message":"Success","data":{"total":3}}`)})
	require.NoError(t, err)
	assert.Equal(t, 200, env.Code)
	assert.JSONEq(t, `{"total":3}`, string(env.Data))

	_, err = DecodeEnvelope(&stubResponse{status: 200})
	assert.Error(t, err)
}
