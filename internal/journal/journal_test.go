package journal

import (
	"path/filepath"
	"testing"

	"collector/internal/dto"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func summary(id, receivedAt, status string) dto.SubmissionSummary {
	return dto.SubmissionSummary{
		ID:             id,
		ReceivedAt:     receivedAt,
		CapturedAt:     "T1",
		NetworkAddress: "203.0.113.9",
		Brand:          "Apple",
		Model:          "iPhone",
		ImageCount:     2,
		ImagesStored:   1,
		Status:         status,
	}
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := openTestJournal(t)

	if err := j.Record(summary("a", "2026-08-30T10:00:00Z", "done")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j.Record(summary("b", "2026-08-30T11:00:00Z", "failed")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent() returned %d entries, expected 2", len(entries))
	}
	if entries[0].ID != "b" || entries[1].ID != "a" {
		t.Errorf("expected newest first, got %s then %s", entries[0].ID, entries[1].ID)
	}
	if entries[0].Status != "failed" || entries[0].Brand != "Apple" {
		t.Errorf("entry round-trip mismatch: %+v", entries[0])
	}
}

func TestJournal_RecentLimit(t *testing.T) {
	j := openTestJournal(t)

	for i, at := range []string{"2026-08-30T10:00:00Z", "2026-08-30T11:00:00Z", "2026-08-30T12:00:00Z"} {
		if err := j.Record(summary(string(rune('a'+i)), at, "done")); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent(2) returned %d entries", len(entries))
	}
}

func TestJournal_DuplicateIDRejected(t *testing.T) {
	j := openTestJournal(t)

	if err := j.Record(summary("a", "2026-08-30T10:00:00Z", "done")); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := j.Record(summary("a", "2026-08-30T11:00:00Z", "done")); err == nil {
		t.Error("Record() should reject a duplicate submission ID")
	}
}

func TestJournal_EmptyRecent(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent() on an empty journal returned %d entries", len(entries))
	}
}
