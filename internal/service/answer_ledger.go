package service

import (
	"errors"
	"fmt"
)

// AnswerLedger tracks a candidate's in-progress answers and navigation
// cursor for one attempt. It holds no server-side truth: the authoritative
// score is produced only when the answers are reconciled at submission.
// Slots are nil until answered; answering again overwrites.
type AnswerLedger struct {
	slots []*int
	trace int
}

var ErrLedgerIndex = errors.New("ledger index out of range")

func NewAnswerLedger(length int) *AnswerLedger {
	if length < 0 {
		length = 0
	}
	return &AnswerLedger{slots: make([]*int, length)}
}

func (l *AnswerLedger) Len() int {
	return len(l.slots)
}

func (l *AnswerLedger) Position() int {
	return l.trace
}

// RecordAnswer stores the selected option for a question, last write wins.
func (l *AnswerLedger) RecordAnswer(index, option int) error {
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("%w: %d", ErrLedgerIndex, index)
	}
	v := option
	l.slots[index] = &v
	return nil
}

// Answer returns the recorded option for a question, nil if unanswered.
func (l *AnswerLedger) Answer(index int) *int {
	if index < 0 || index >= len(l.slots) {
		return nil
	}
	return l.slots[index]
}

// Advance moves the cursor forward one question. At the last question the
// cursor stays put and Advance reports false.
func (l *AnswerLedger) Advance() bool {
	if l.trace >= len(l.slots)-1 {
		return false
	}
	l.trace++
	return true
}

// Retreat moves the cursor back one question, clamped at the first.
func (l *AnswerLedger) Retreat() bool {
	if l.trace <= 0 {
		return false
	}
	l.trace--
	return true
}

// SetPosition jumps the cursor to a question, as the navigator grid does.
func (l *AnswerLedger) SetPosition(index int) error {
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("%w: %d", ErrLedgerIndex, index)
	}
	l.trace = index
	return nil
}

// ResetAll clears every slot and the cursor for a fresh attempt.
func (l *AnswerLedger) ResetAll(length int) {
	if length < 0 {
		length = 0
	}
	l.slots = make([]*int, length)
	l.trace = 0
}

// Answers snapshots the slots in question order.
func (l *AnswerLedger) Answers() []*int {
	out := make([]*int, len(l.slots))
	copy(out, l.slots)
	return out
}

// LedgerSnapshot is the wire form of a ledger, used by the progress stash
// so a crashed client can pick up where it left off.
type LedgerSnapshot struct {
	Answers []*int `json:"answers"`
	Trace   int    `json:"trace"`
}

// Snapshot exports the ledger state.
func (l *AnswerLedger) Snapshot() LedgerSnapshot {
	return LedgerSnapshot{Answers: l.Answers(), Trace: l.trace}
}

// RestoreSnapshot loads a snapshot into a ledger of the attempt's real
// length, truncating extra answers and clamping the cursor. Client input
// is normalized here, never trusted as-is.
func RestoreSnapshot(snap LedgerSnapshot, length int) *AnswerLedger {
	l := NewAnswerLedger(length)
	for i, a := range snap.Answers {
		if i >= length {
			break
		}
		if a != nil {
			v := *a
			l.slots[i] = &v
		}
	}
	if snap.Trace > 0 {
		if snap.Trace < length {
			l.trace = snap.Trace
		} else if length > 0 {
			l.trace = length - 1
		}
	}
	return l
}
