package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/interaction-admin/internal/config"
	"github.com/samvad-hq/interaction-admin/internal/domain"
	"github.com/samvad-hq/interaction-admin/internal/logger"
	"github.com/samvad-hq/interaction-admin/internal/metrics"
	"github.com/samvad-hq/interaction-admin/internal/output"
	"github.com/samvad-hq/interaction-admin/internal/storage"
	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
	"github.com/samvad-hq/interaction-admin/pkg/interaction"
	"github.com/samvad-hq/interaction-admin/pkg/publishers"
)

// Console wires the binding table to the transport, the local journal, audit
// publishers and metrics, and renders results for the command line.
type Console struct {
	cfg     *config.Config
	client  *interaction.Client
	store   storage.Store
	fanout  *publishers.Fanout
	metrics *metrics.Recorder
	log     logger.Logger
	out     io.Writer
}

// NewConsole builds a console runtime from config.
func NewConsole(ctx context.Context, cfg *config.Config, log logger.Logger) (*Console, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	transport := httpclient.NewRestyClient(httpclient.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: cfg.AuthHeaders(),
		Logger:  log,
	})

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStore(cfg.JournalType, cfg.JournalPath, storage.Options{
		RecordTTL:       cfg.JournalTTL,
		CleanupInterval: cfg.JournalCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init journal: %w", err)
	}
	log.DebugObj("journal initialized", "journal_config", map[string]any{
		"type":        cfg.JournalType,
		"path":        cfg.JournalPath,
		"ttl_seconds": int(cfg.JournalTTL.Seconds()),
	})

	return &Console{
		cfg:     cfg,
		client:  interaction.New(transport),
		store:   store,
		fanout:  fanout,
		metrics: metrics.NewRecorder(),
		log:     log,
		out:     os.Stdout,
	}, nil
}

func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*publishers.Fanout, error) {
	if cfg.PublishersFile == "" {
		return publishers.NewFanout(nil), nil
	}
	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := publisherReg.Enabled()
	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}

	summaries := make([]map[string]string, 0, len(enabled))
	for _, pubCfg := range enabled {
		summaries = append(summaries, map[string]string{"id": pubCfg.ID, "type": pubCfg.Type})
	}
	log.DebugObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(summaries),
		"publishers": summaries,
	})
	return publishers.NewFanout(pubClients), nil
}

// SetOutput redirects rendered results, mainly for tests.
func (c *Console) SetOutput(w io.Writer) {
	if w != nil {
		c.out = w
	}
}

// Call issues op, journals and audits it, then renders the response. Export
// operations are saved under the export directory instead of printed.
func (c *Console) Call(ctx context.Context, op interaction.Operation, args interaction.Args) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("console is not initialized")
	}
	binding, ok := interaction.Lookup(op)
	if !ok {
		return fmt.Errorf("%w: %q", interaction.ErrUnknownOperation, op)
	}

	start := time.Now()
	resp, callErr := c.client.Invoke(ctx, op, args)
	elapsed := time.Since(start)

	rec := domain.OperationRecord{
		ID:        uuid.NewString(),
		Operation: string(op),
		Method:    binding.Method,
		Path:      binding.Request(args).Path,
		ElapsedMS: elapsed.Milliseconds(),
		IssuedAt:  start.UTC(),
	}
	if resp != nil {
		rec.StatusCode = resp.StatusCode()
	}
	if callErr != nil {
		rec.Error = callErr.Error()
	}
	c.metrics.ObserveOperation(rec.Operation, rec.StatusCode, elapsed)
	c.journal(rec)
	if binding.Mutating() {
		c.audit(ctx, rec)
	}

	if callErr != nil {
		c.log.ErrorObj("operation failed", "operation_error", map[string]any{
			"operation": rec.Operation,
			"status":    rec.StatusCode,
			"error":     output.DescribeError(callErr),
		})
		return callErr
	}
	c.log.InfoObj("operation completed", "operation_result", map[string]any{
		"operation":  rec.Operation,
		"status":     rec.StatusCode,
		"elapsed_ms": rec.ElapsedMS,
	})

	if binding.Kind == interaction.KindBlob {
		path, err := output.SaveExport(c.cfg.ExportDir, rec.Operation, resp)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, path)
		return err
	}
	return output.Write(c.out, c.cfg.OutputFormat, resp.Body())
}

// History prints up to limit journal entries, newest first.
func (c *Console) History(limit int) error {
	recs, err := c.store.Recent(limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if recs == nil {
		recs = []domain.OperationRecord{}
	}
	return output.WriteValue(c.out, c.cfg.OutputFormat, recs)
}

// OperationInfo summarizes one binding for listing.
type OperationInfo struct {
	Name   string `json:"name" yaml:"name"`
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
	Kind   string `json:"kind" yaml:"kind"`
}

// Operations prints the binding table.
func (c *Console) Operations() error {
	ops := interaction.Operations()
	infos := make([]OperationInfo, 0, len(ops))
	for _, op := range ops {
		b, _ := interaction.Lookup(op)
		infos = append(infos, OperationInfo{Name: string(op), Method: b.Method, Path: b.Path, Kind: b.Kind.String()})
	}
	return output.WriteValue(c.out, c.cfg.OutputFormat, infos)
}

// Close flushes metrics and releases the journal and publishers.
func (c *Console) Close() {
	if c == nil {
		return
	}
	host, _ := os.Hostname()
	if err := c.metrics.Push(c.cfg.PushgatewayURL, host); err != nil {
		c.log.WarnObj("metrics push failed", "error", err.Error())
	}
	if err := c.fanout.Close(); err != nil {
		c.log.ErrorObj("publishers close failed", "error", err.Error())
	}
	if err := c.store.Close(); err != nil {
		c.log.ErrorObj("journal close failed", "error", err.Error())
	}
}

func (c *Console) journal(rec domain.OperationRecord) {
	if err := c.store.Append(rec); err != nil {
		c.log.WarnObj("journal append failed", "journal_error", map[string]any{
			"operation": rec.Operation,
			"error":     err.Error(),
		})
	}
}

// audit never fails the operation; delivery problems are logged and counted.
func (c *Console) audit(ctx context.Context, rec domain.OperationRecord) {
	if c.fanout.Size() == 0 {
		return
	}
	delivered, err := c.fanout.Publish(ctx, publishers.NewEvent(c.cfg.AppName, rec))
	if err != nil {
		c.metrics.AuditFailed()
		c.log.WarnObj("audit publish failed", "audit_error", map[string]any{
			"operation": rec.Operation,
			"delivered": delivered,
			"error":     err.Error(),
		})
	}
}
