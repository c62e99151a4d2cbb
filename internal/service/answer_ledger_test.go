package service

import (
	"errors"
	"testing"
)

func TestLedgerRecordAnswerLastWriteWins(t *testing.T) {
	l := NewAnswerLedger(5)

	if err := l.RecordAnswer(2, 1); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if err := l.RecordAnswer(2, 3); err != nil {
		t.Fatalf("RecordAnswer overwrite: %v", err)
	}
	if got := l.Answer(2); got == nil || *got != 3 {
		t.Errorf("Answer(2) = %v, want 3", got)
	}
	if got := l.Answer(0); got != nil {
		t.Errorf("untouched slot = %v, want nil", got)
	}
}

func TestLedgerRecordAnswerBounds(t *testing.T) {
	l := NewAnswerLedger(3)

	for _, idx := range []int{-1, 3, 100} {
		if err := l.RecordAnswer(idx, 0); !errors.Is(err, ErrLedgerIndex) {
			t.Errorf("RecordAnswer(%d) err = %v, want ErrLedgerIndex", idx, err)
		}
	}
}

func TestLedgerCursorClamps(t *testing.T) {
	l := NewAnswerLedger(3)

	if l.Retreat() {
		t.Error("Retreat at first question reported movement")
	}
	if l.Position() != 0 {
		t.Errorf("position = %d, want 0", l.Position())
	}

	if !l.Advance() || !l.Advance() {
		t.Fatal("Advance within bounds failed")
	}
	if l.Advance() {
		t.Error("Advance past last question reported movement")
	}
	if l.Position() != 2 {
		t.Errorf("position = %d, want 2", l.Position())
	}

	if !l.Retreat() {
		t.Error("Retreat within bounds failed")
	}
	if l.Position() != 1 {
		t.Errorf("position = %d, want 1", l.Position())
	}
}

func TestLedgerSetPosition(t *testing.T) {
	l := NewAnswerLedger(10)

	if err := l.SetPosition(7); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if l.Position() != 7 {
		t.Errorf("position = %d, want 7", l.Position())
	}
	if err := l.SetPosition(10); !errors.Is(err, ErrLedgerIndex) {
		t.Errorf("SetPosition(10) err = %v, want ErrLedgerIndex", err)
	}
	if err := l.SetPosition(-1); !errors.Is(err, ErrLedgerIndex) {
		t.Errorf("SetPosition(-1) err = %v, want ErrLedgerIndex", err)
	}
	if l.Position() != 7 {
		t.Errorf("position moved on rejected jump, = %d", l.Position())
	}
}

func TestLedgerResetAll(t *testing.T) {
	l := NewAnswerLedger(4)
	_ = l.RecordAnswer(0, 2)
	_ = l.SetPosition(3)

	l.ResetAll(6)

	if l.Len() != 6 {
		t.Errorf("Len = %d, want 6", l.Len())
	}
	if l.Position() != 0 {
		t.Errorf("position = %d, want 0", l.Position())
	}
	for i := 0; i < l.Len(); i++ {
		if l.Answer(i) != nil {
			t.Errorf("slot %d survived reset", i)
		}
	}
}

func TestLedgerZeroLength(t *testing.T) {
	l := NewAnswerLedger(0)

	if l.Advance() || l.Retreat() {
		t.Error("cursor moved on empty ledger")
	}
	if err := l.RecordAnswer(0, 0); !errors.Is(err, ErrLedgerIndex) {
		t.Errorf("RecordAnswer on empty ledger err = %v", err)
	}

	if n := NewAnswerLedger(-3).Len(); n != 0 {
		t.Errorf("negative length produced Len = %d", n)
	}
}

func TestLedgerSnapshotRoundTrip(t *testing.T) {
	l := NewAnswerLedger(4)
	_ = l.RecordAnswer(1, 2)
	_ = l.SetPosition(3)

	snap := l.Snapshot()
	restored := RestoreSnapshot(snap, 4)

	if restored.Position() != 3 {
		t.Errorf("restored position = %d, want 3", restored.Position())
	}
	if got := restored.Answer(1); got == nil || *got != 2 {
		t.Errorf("restored Answer(1) = %v, want 2", got)
	}

	// The snapshot and the restored ledger must not share slot storage.
	_ = restored.RecordAnswer(1, 0)
	if *snap.Answers[1] != 2 {
		t.Error("restore aliased the snapshot's answer storage")
	}
}

func TestRestoreSnapshotNormalizes(t *testing.T) {
	snap := LedgerSnapshot{
		Answers: []*int{ptr(0), ptr(1), ptr(2), ptr(3), ptr(0)},
		Trace:   99,
	}

	l := RestoreSnapshot(snap, 3)

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if l.Position() != 2 {
		t.Errorf("trace clamped to %d, want 2", l.Position())
	}
	if got := l.Answer(2); got == nil || *got != 2 {
		t.Errorf("Answer(2) = %v, want 2", got)
	}

	if got := RestoreSnapshot(LedgerSnapshot{Trace: 5}, 0); got.Position() != 0 {
		t.Errorf("empty-length restore position = %d, want 0", got.Position())
	}
	if got := RestoreSnapshot(LedgerSnapshot{Trace: -4}, 3); got.Position() != 0 {
		t.Errorf("negative trace restore position = %d, want 0", got.Position())
	}
}
