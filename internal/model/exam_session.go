package model

import (
	"encoding/json"
	"time"
)

// Session lifecycle states as reported to callers. Liveness is never
// stored: in_progress vs expired is derived from StartedAt plus the
// configured duration at read time.
const (
	SessionStateNone       = "none"
	SessionStateInProgress = "in_progress"
	SessionStateExpired    = "expired"
	SessionStateCompleted  = "completed"
)

// ExamSession is one candidate's live test attempt. The unique index on
// Email is what makes a concurrent double-start have exactly one winner.
// The composed paper and its answer key live here for the attempt's
// lifetime so that scoring at submission never trusts the client.
// swagger:model ExamSession
type ExamSession struct {
	UUIDBase
	Email          string          `gorm:"size:255;uniqueIndex;not null" json:"email"`
	RegNo          string          `gorm:"size:50;not null" json:"regNo"`
	Department     string          `gorm:"size:100;not null" json:"department"`
	StartedAt      time.Time       `gorm:"not null" json:"startedAt"`
	Questions      json.RawMessage `gorm:"type:json" json:"-"`
	AnswerKey      json.RawMessage `gorm:"type:json" json:"-"`
	TotalQuestions int             `gorm:"not null" json:"totalQuestions"`
}

func (ExamSession) TableName() string {
	return "exam_sessions"
}

// ExpiresAt derives the session deadline; it is computed, never persisted.
func (s *ExamSession) ExpiresAt(duration time.Duration) time.Time {
	return s.StartedAt.Add(duration)
}

// Active reports whether the session is still inside its time window.
func (s *ExamSession) Active(duration time.Duration, now time.Time) bool {
	return now.Before(s.ExpiresAt(duration))
}

// TestResult is the archived summary of a completed attempt. The live
// session row is deleted once this is written; only the summary survives.
// swagger:model TestResult
type TestResult struct {
	UUIDBase
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	RegNo          string    `gorm:"size:50;not null" json:"regNo"`
	Department     string    `gorm:"size:100;not null" json:"department"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	CompletedAt    time.Time `gorm:"not null" json:"completedAt"`
}

func (TestResult) TableName() string {
	return "test_results"
}
