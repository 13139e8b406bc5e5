package storage

import (
	"testing"
	"time"

	"github.com/samvad-hq/interaction-admin/internal/domain"
)

func TestBoltStoreAppendsAndListsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	storeRaw, err := openBolt(dir+"/journal.db", Options{RecordTTL: time.Hour, CleanupInterval: time.Hour})
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	base := time.Now().UTC()
	for i, op := range []string{"fetchLikes", "deleteLikes", "refreshCache"} {
		rec := domain.OperationRecord{
			ID:         op,
			Operation:  op,
			StatusCode: 200,
			IssuedAt:   base.Add(time.Duration(i) * time.Millisecond),
		}
		if err := store.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recs, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Operation != "refreshCache" || recs[1].Operation != "deleteLikes" {
		t.Fatalf("unexpected order: %+v", recs)
	}
}

func TestBoltStoreExpiresRecords(t *testing.T) {
	dir := t.TempDir()
	storeRaw, err := openBolt(dir+"/journal.db", Options{RecordTTL: time.Second, CleanupInterval: time.Second})
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	if err := store.Append(domain.OperationRecord{ID: "r1", Operation: "syncLikeData"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	recs, err := store.Recent(0)
	if err != nil || len(recs) != 1 {
		t.Fatalf("expected one record, got %d err=%v", len(recs), err)
	}

	// Fast-forward cleanup cadence and trigger expiry.
	store.lastCleanup.Store(time.Now().Add(-2 * time.Second).Unix())
	time.Sleep(1100 * time.Millisecond)

	recs, err = store.Recent(0)
	if err != nil {
		t.Fatalf("Recent after expiry: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected records to expire, got %d", len(recs))
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Append(domain.OperationRecord{ID: "x"}); err != nil {
		t.Fatalf("noop store Append: %v", err)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
