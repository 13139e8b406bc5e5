package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/samvad-hq/interaction-admin/internal/config"
	"github.com/samvad-hq/interaction-admin/internal/domain"
	"github.com/samvad-hq/interaction-admin/internal/logger"
	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
	"github.com/samvad-hq/interaction-admin/pkg/interaction"
	"github.com/samvad-hq/interaction-admin/pkg/publishers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditSink struct {
	mu     sync.Mutex
	events []publishers.Event
}

func (a *auditSink) handler(w http.ResponseWriter, r *http.Request) {
	var evt publishers.Event
	if err := json.NewDecoder(r.Body).Decode(&evt); err == nil {
		a.mu.Lock()
		a.events = append(a.events, evt)
		a.mu.Unlock()
	}
	w.WriteHeader(http.StatusAccepted)
}

func (a *auditSink) recorded() []publishers.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]publishers.Event(nil), a.events...)
}

func newTestConsole(t *testing.T, backend http.HandlerFunc, sink *auditSink) (*Console, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := &config.Config{
		AppName:                "interaction-admin",
		BaseURL:                srv.URL,
		Timeout:                2 * time.Second,
		AuthHeader:             "Authorization",
		AuthToken:              "Bearer t0ken",
		JournalType:            "bbolt",
		JournalPath:            filepath.Join(dir, "journal.db"),
		JournalTTL:             time.Hour,
		JournalCleanupInterval: time.Hour,
		ExportDir:              filepath.Join(dir, "exports"),
		OutputFormat:           "json",
	}
	if sink != nil {
		auditSrv := httptest.NewServer(http.HandlerFunc(sink.handler))
		t.Cleanup(auditSrv.Close)
		cfg.PublishersFile = filepath.Join(dir, "publishers.yaml")
		raw := "publishers:\n  - id: audit\n    type: http\n    enabled: true\n    http:\n      url: " + auditSrv.URL + "\n"
		require.NoError(t, os.WriteFile(cfg.PublishersFile, []byte(raw), 0o600))
	}

	console, err := NewConsole(context.Background(), cfg, logger.NopLogger{})
	require.NoError(t, err)
	t.Cleanup(console.Close)

	var out bytes.Buffer
	console.SetOutput(&out)
	return console, &out
}

func TestConsoleCallRendersAndJournals(t *testing.T) {
	console, out := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interaction/sync/status", r.URL.Path)
		assert.Equal(t, "Bearer t0ken", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"data":{"running":false}}`))
	}, nil)

	require.NoError(t, console.Call(context.Background(), interaction.OpFetchSyncStatus, interaction.Args{}))
	assert.Contains(t, out.String(), `"running": false`)

	out.Reset()
	require.NoError(t, console.History(10))
	var recs []domain.OperationRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, string(interaction.OpFetchSyncStatus), recs[0].Operation)
	assert.Equal(t, http.StatusOK, recs[0].StatusCode)
	assert.True(t, recs[0].Succeeded())
}

func TestConsoleCallAuditsMutatingOperations(t *testing.T) {
	sink := &auditSink{}
	console, _ := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "ids=a&ids=b", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"code":200}`))
	}, sink)

	args := interaction.Args{IDs: []string{"a", "b"}}
	require.NoError(t, console.Call(context.Background(), interaction.OpDeleteLikes, args))

	events := sink.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, "interaction-admin", events[0].Source)
	assert.Equal(t, string(interaction.OpDeleteLikes), events[0].Record.Operation)
	assert.Equal(t, http.MethodDelete, events[0].Record.Method)
}

func TestConsoleCallSkipsAuditForReads(t *testing.T) {
	sink := &auditSink{}
	console, _ := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":200}`))
	}, sink)

	require.NoError(t, console.Call(context.Background(), interaction.OpFetchLikeStats, interaction.Args{}))
	assert.Empty(t, sink.recorded())
}

func TestConsoleCallReturnsStatusError(t *testing.T) {
	console, out := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"comment not found"}`))
	}, nil)

	args := interaction.Args{ID: "c1", Body: map[string]string{"content": "edited"}}
	err := console.Call(context.Background(), interaction.OpUpdateComment, args)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpclient.StatusCodeOf(err))
	assert.Empty(t, out.String())

	out.Reset()
	require.NoError(t, console.History(1))
	var recs []domain.OperationRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "/interaction/comments/c1", recs[0].Path)
	assert.NotEmpty(t, recs[0].Error)
}

func TestConsoleCallSavesExports(t *testing.T) {
	console, out := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "article", r.URL.Query().Get("targetType"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="likes.csv"`)
		_, _ = w.Write([]byte("id,target\n1,a\n"))
	}, nil)

	args := interaction.Args{Params: interaction.Params{"targetType": {"article"}}}
	require.NoError(t, console.Call(context.Background(), interaction.OpExportLikes, args))

	path := strings.TrimSpace(out.String())
	assert.Equal(t, "likes.csv", filepath.Base(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "id,target\n1,a\n", string(data))
}

func TestConsoleCallUnknownOperation(t *testing.T) {
	console, _ := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("no request expected")
	}, nil)

	err := console.Call(context.Background(), interaction.Operation("dropDatabase"), interaction.Args{})
	assert.ErrorIs(t, err, interaction.ErrUnknownOperation)
}

func TestConsoleOperationsListsTable(t *testing.T) {
	console, out := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {}, nil)

	require.NoError(t, console.Operations())
	var infos []OperationInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	assert.Len(t, infos, len(interaction.Operations()))
}
