package interaction

import (
	"net/http"
	"sort"
)

// Operation names a single backend call exposed by the admin console.
type Operation string

// Kind describes where an operation's arguments are placed in the request.
type Kind int

const (
	// KindNone issues the request with no parameters and no body.
	KindNone Kind = iota
	// KindQuery sends Args.Params as the query string.
	KindQuery
	// KindBody sends Args.Body as a JSON body.
	KindBody
	// KindIDBody substitutes Args.ID into the path and sends Args.Body as JSON.
	KindIDBody
	// KindDeleteIDs sends Args.IDs as repeated ids= query parameters.
	KindDeleteIDs
	// KindApprove sends {ids, reason} with reason omitted when empty.
	KindApprove
	// KindReject sends {ids, reason} with reason always present.
	KindReject
	// KindPath substitutes Args.ID and Args.SubID into the path, no body.
	KindPath
	// KindMultipart uploads Args.File as the "file" form field.
	KindMultipart
	// KindBlob sends Args.Params as the query and streams a binary response.
	KindBlob
	// KindOptionalQuery sends only the non-empty Args.Fields as the query.
	KindOptionalQuery
	// KindListQuery joins Args.IDs with commas into Binding.ListParam and
	// adds every Args.Fields entry to the query.
	KindListQuery
)

var kindNames = map[Kind]string{
	KindNone:          "none",
	KindQuery:         "query",
	KindBody:          "body",
	KindIDBody:        "id+body",
	KindDeleteIDs:     "ids",
	KindApprove:       "approve",
	KindReject:        "reject",
	KindPath:          "path",
	KindMultipart:     "multipart",
	KindBlob:          "blob",
	KindOptionalQuery: "optional-query",
	KindListQuery:     "list-query",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Binding is the declarative request descriptor of an operation.
type Binding struct {
	Method string
	// Path may contain the {id} and {subId} placeholders.
	Path      string
	Kind      Kind
	ListParam string
	// Fields lists the optional query keys for KindOptionalQuery and the
	// scalar keys for KindListQuery.
	Fields []string
}

// Mutating reports whether the operation changes backend state.
func (b Binding) Mutating() bool {
	return b.Method != http.MethodGet
}

const (
	OpFetchLikes              Operation = "fetchLikes"
	OpFetchLikesPage          Operation = "fetchLikesPage"
	OpCreateLike              Operation = "createLike"
	OpUpdateLike              Operation = "updateLike"
	OpDeleteLikes             Operation = "deleteLikes"
	OpFetchLikeStats          Operation = "fetchLikeStats"
	OpFetchLikeCountsByTarget Operation = "fetchLikeCountsByTarget"

	OpFetchComments               Operation = "fetchComments"
	OpFetchCommentsPage           Operation = "fetchCommentsPage"
	OpCreateComment               Operation = "createComment"
	OpUpdateComment               Operation = "updateComment"
	OpDeleteComments              Operation = "deleteComments"
	OpApproveComments             Operation = "approveComments"
	OpRejectComments              Operation = "rejectComments"
	OpFetchCommentStats           Operation = "fetchCommentStats"
	OpFetchCommentCountsByArticle Operation = "fetchCommentCountsByArticle"

	OpFetchMoments           Operation = "fetchMoments"
	OpFetchMomentsPage       Operation = "fetchMomentsPage"
	OpCreateMoment           Operation = "createMoment"
	OpUpdateMoment           Operation = "updateMoment"
	OpDeleteMoments          Operation = "deleteMoments"
	OpFetchMomentAttachments Operation = "fetchMomentAttachments"
	OpUploadMomentAttachment Operation = "uploadMomentAttachment"
	OpDeleteMomentAttachment Operation = "deleteMomentAttachment"

	OpFetchModerationPending     Operation = "fetchModerationPending"
	OpFetchModerationPendingPage Operation = "fetchModerationPendingPage"
	OpApproveModerationContent   Operation = "approveModerationContent"
	OpRejectModerationContent    Operation = "rejectModerationContent"
	OpFetchModerationRules       Operation = "fetchModerationRules"
	OpFetchModerationRulesPage   Operation = "fetchModerationRulesPage"
	OpCreateModerationRule       Operation = "createModerationRule"
	OpUpdateModerationRule       Operation = "updateModerationRule"
	OpDeleteModerationRules      Operation = "deleteModerationRules"
	OpEnableModerationRule       Operation = "enableModerationRule"
	OpDisableModerationRule      Operation = "disableModerationRule"
	OpFetchModerationLogs        Operation = "fetchModerationLogs"
	OpFetchModerationLogsPage    Operation = "fetchModerationLogsPage"
	OpFetchModerationStats       Operation = "fetchModerationStats"
	OpFetchModerationTrend       Operation = "fetchModerationTrend"

	OpFetchInteractionHealth     Operation = "fetchInteractionHealth"
	OpFetchInteractionMetrics    Operation = "fetchInteractionMetrics"
	OpFetchInteractionEvents     Operation = "fetchInteractionEvents"
	OpFetchInteractionEventsPage Operation = "fetchInteractionEventsPage"
	OpFetchInteractionErrors     Operation = "fetchInteractionErrors"
	OpFetchInteractionErrorsPage Operation = "fetchInteractionErrorsPage"

	OpFetchPerformanceMetrics Operation = "fetchPerformanceMetrics"
	OpFetchDatabaseMetrics    Operation = "fetchDatabaseMetrics"
	OpFetchCacheMetrics       Operation = "fetchCacheMetrics"
	OpFetchJvmMetrics         Operation = "fetchJvmMetrics"
	OpFetchServiceMetrics     Operation = "fetchServiceMetrics"

	OpClearLikeCache    Operation = "clearLikeCache"
	OpClearCommentCache Operation = "clearCommentCache"
	OpRefreshCache      Operation = "refreshCache"

	OpSyncLikeData    Operation = "syncLikeData"
	OpSyncCommentData Operation = "syncCommentData"
	OpFetchSyncStatus Operation = "fetchSyncStatus"

	OpBatchUpdateLikes    Operation = "batchUpdateLikes"
	OpBatchUpdateComments Operation = "batchUpdateComments"
	OpBatchUpdateMoments  Operation = "batchUpdateMoments"

	OpExportLikes          Operation = "exportLikes"
	OpExportComments       Operation = "exportComments"
	OpExportMoments        Operation = "exportMoments"
	OpExportModerationLogs Operation = "exportModerationLogs"
)

const (
	get  = http.MethodGet
	post = http.MethodPost
	put  = http.MethodPut
	del  = http.MethodDelete
)

var bindings = map[Operation]Binding{
	OpFetchLikes:              {Method: get, Path: "/interaction/admin/likes", Kind: KindQuery},
	OpFetchLikesPage:          {Method: get, Path: "/interaction/admin/likes/page", Kind: KindQuery},
	OpCreateLike:              {Method: post, Path: "/interaction/likes", Kind: KindBody},
	OpUpdateLike:              {Method: put, Path: "/interaction/likes/{id}", Kind: KindIDBody},
	OpDeleteLikes:             {Method: del, Path: "/interaction/likes", Kind: KindDeleteIDs},
	OpFetchLikeStats:          {Method: get, Path: "/interaction/likes/stats", Kind: KindQuery},
	OpFetchLikeCountsByTarget: {Method: get, Path: "/interaction/likes/counts", Kind: KindListQuery, ListParam: "targetIds", Fields: []string{"targetType"}},

	OpFetchComments:               {Method: get, Path: "/interaction/admin/comments", Kind: KindQuery},
	OpFetchCommentsPage:           {Method: get, Path: "/interaction/admin/comments/page", Kind: KindQuery},
	OpCreateComment:               {Method: post, Path: "/interaction/comments", Kind: KindBody},
	OpUpdateComment:               {Method: put, Path: "/interaction/comments/{id}", Kind: KindIDBody},
	OpDeleteComments:              {Method: del, Path: "/interaction/comments", Kind: KindDeleteIDs},
	OpApproveComments:             {Method: post, Path: "/interaction/comments/approve", Kind: KindApprove},
	OpRejectComments:              {Method: post, Path: "/interaction/comments/reject", Kind: KindReject},
	OpFetchCommentStats:           {Method: get, Path: "/interaction/comments/stats", Kind: KindQuery},
	OpFetchCommentCountsByArticle: {Method: get, Path: "/interaction/comments/counts", Kind: KindListQuery, ListParam: "articleIds"},

	// fetchMomentsPage shares the list path; the backend pages on the same route.
	OpFetchMoments:           {Method: get, Path: "/content/moments", Kind: KindQuery},
	OpFetchMomentsPage:       {Method: get, Path: "/content/moments", Kind: KindQuery},
	OpCreateMoment:           {Method: post, Path: "/interaction/moments", Kind: KindBody},
	OpUpdateMoment:           {Method: put, Path: "/interaction/moments/{id}", Kind: KindIDBody},
	OpDeleteMoments:          {Method: del, Path: "/interaction/moments", Kind: KindDeleteIDs},
	OpFetchMomentAttachments: {Method: get, Path: "/interaction/moments/{id}/attachments", Kind: KindPath},
	OpUploadMomentAttachment: {Method: post, Path: "/interaction/moments/{id}/attachments", Kind: KindMultipart},
	OpDeleteMomentAttachment: {Method: del, Path: "/interaction/moments/{id}/attachments/{subId}", Kind: KindPath},

	OpFetchModerationPending:     {Method: get, Path: "/interaction/admin/moderation/pending", Kind: KindQuery},
	OpFetchModerationPendingPage: {Method: get, Path: "/interaction/admin/moderation/pending/page", Kind: KindQuery},
	OpApproveModerationContent:   {Method: post, Path: "/interaction/admin/moderation/approve", Kind: KindApprove},
	OpRejectModerationContent:    {Method: post, Path: "/interaction/admin/moderation/reject", Kind: KindReject},
	OpFetchModerationRules:       {Method: get, Path: "/interaction/admin/moderation/rules", Kind: KindQuery},
	OpFetchModerationRulesPage:   {Method: get, Path: "/interaction/admin/moderation/rules/page", Kind: KindQuery},
	OpCreateModerationRule:       {Method: post, Path: "/interaction/admin/moderation/rules", Kind: KindBody},
	OpUpdateModerationRule:       {Method: put, Path: "/interaction/admin/moderation/rules/{id}", Kind: KindIDBody},
	OpDeleteModerationRules:      {Method: del, Path: "/interaction/admin/moderation/rules", Kind: KindDeleteIDs},
	OpEnableModerationRule:       {Method: post, Path: "/interaction/admin/moderation/rules/{id}/enable", Kind: KindPath},
	OpDisableModerationRule:      {Method: post, Path: "/interaction/admin/moderation/rules/{id}/disable", Kind: KindPath},
	OpFetchModerationLogs:        {Method: get, Path: "/interaction/admin/moderation/logs", Kind: KindQuery},
	OpFetchModerationLogsPage:    {Method: get, Path: "/interaction/admin/moderation/logs/page", Kind: KindQuery},
	OpFetchModerationStats:       {Method: get, Path: "/interaction/admin/moderation/stats", Kind: KindQuery},
	OpFetchModerationTrend:       {Method: get, Path: "/interaction/admin/moderation/trend", Kind: KindQuery},

	OpFetchInteractionHealth:     {Method: get, Path: "/interaction/admin/health", Kind: KindNone},
	OpFetchInteractionMetrics:    {Method: get, Path: "/interaction/admin/metrics", Kind: KindNone},
	OpFetchInteractionEvents:     {Method: get, Path: "/interaction/events", Kind: KindQuery},
	OpFetchInteractionEventsPage: {Method: get, Path: "/interaction/events/page", Kind: KindQuery},
	OpFetchInteractionErrors:     {Method: get, Path: "/interaction/errors", Kind: KindQuery},
	OpFetchInteractionErrorsPage: {Method: get, Path: "/interaction/errors/page", Kind: KindQuery},

	OpFetchPerformanceMetrics: {Method: get, Path: "/interaction/performance/metrics", Kind: KindQuery},
	OpFetchDatabaseMetrics:    {Method: get, Path: "/interaction/performance/database", Kind: KindNone},
	OpFetchCacheMetrics:       {Method: get, Path: "/interaction/performance/cache", Kind: KindNone},
	OpFetchJvmMetrics:         {Method: get, Path: "/interaction/performance/jvm", Kind: KindNone},
	OpFetchServiceMetrics:     {Method: get, Path: "/interaction/performance/services", Kind: KindNone},

	OpClearLikeCache:    {Method: post, Path: "/interaction/cache/likes/clear", Kind: KindOptionalQuery, Fields: []string{"targetType", "targetId"}},
	OpClearCommentCache: {Method: post, Path: "/interaction/cache/comments/clear", Kind: KindOptionalQuery, Fields: []string{"articleId"}},
	OpRefreshCache:      {Method: post, Path: "/interaction/cache/refresh", Kind: KindNone},

	OpSyncLikeData:    {Method: post, Path: "/interaction/sync/likes", Kind: KindNone},
	OpSyncCommentData: {Method: post, Path: "/interaction/sync/comments", Kind: KindNone},
	OpFetchSyncStatus: {Method: get, Path: "/interaction/sync/status", Kind: KindNone},

	OpBatchUpdateLikes:    {Method: post, Path: "/interaction/likes/batch", Kind: KindBody},
	OpBatchUpdateComments: {Method: post, Path: "/interaction/comments/batch", Kind: KindBody},
	OpBatchUpdateMoments:  {Method: post, Path: "/interaction/moments/batch", Kind: KindBody},

	OpExportLikes:          {Method: get, Path: "/interaction/likes/export", Kind: KindBlob},
	OpExportComments:       {Method: get, Path: "/interaction/comments/export", Kind: KindBlob},
	OpExportMoments:        {Method: get, Path: "/interaction/moments/export", Kind: KindBlob},
	OpExportModerationLogs: {Method: get, Path: "/interaction/admin/moderation/logs/export", Kind: KindBlob},
}

// Lookup returns the binding registered for op.
func Lookup(op Operation) (Binding, bool) {
	b, ok := bindings[op]
	return b, ok
}

// Operations returns every registered operation sorted by name.
func Operations() []Operation {
	out := make([]Operation, 0, len(bindings))
	for op := range bindings {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
