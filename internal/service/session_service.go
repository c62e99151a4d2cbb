package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/util"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SessionStore, ResultStore and AccessCodeStore are the persistence
// surface the tracker needs. The GORM repositories implement them; tests
// use in-memory fakes.
type SessionStore interface {
	Create(s *model.ExamSession) error
	FindByEmail(email string) (*model.ExamSession, error)
	DeleteByEmail(email string) (int64, error)
}

type ResultStore interface {
	Save(r *model.TestResult) error
	FindByEmail(email string) (*model.TestResult, error)
	DeleteByEmail(email string) (int64, error)
}

type AccessCodeStore interface {
	Active() (*model.AccessCode, error)
	Replace(code string) (*model.AccessCode, error)
}

// SessionService owns the attempt lifecycle: at most one live session per
// candidate email, liveness derived from the start time at every read,
// scoring against the server-held answer key at submission.
type SessionService struct {
	Sessions SessionStore
	Results  ResultStore
	Codes    AccessCodeStore
	Composer *ComposeService
	Duration time.Duration

	Redis *redis.Client // progress stash; nil disables the feature

	now func() time.Time
}

func NewSessionService(sessions SessionStore, results ResultStore, codes AccessCodeStore, composer *ComposeService, duration time.Duration, rdb *redis.Client) *SessionService {
	return &SessionService{
		Sessions: sessions,
		Results:  results,
		Codes:    codes,
		Composer: composer,
		Duration: duration,
		Redis:    rdb,
		now:      time.Now,
	}
}

// SessionDetails is what the admin view and the candidate's own check see
// of a live session.
type SessionDetails struct {
	Email          string    `json:"email"`
	RegNo          string    `json:"regNo"`
	Department     string    `json:"department"`
	StartedAt      time.Time `json:"startTime"`
	ExpiresAt      time.Time `json:"expiresAt"`
	TotalQuestions int       `json:"totalQuestions"`
}

type SessionStatus struct {
	Active  bool            `json:"hasActiveSession"`
	State   string          `json:"state"`
	Details *SessionDetails `json:"sessionDetails,omitempty"`
}

// CheckActive derives the session state from the stored start time and the
// clock. An expired row is reported inactive but is deliberately not
// deleted here: it stays as evidence of the abandoned attempt until an
// admin clears it or a late submission completes it.
func (s *SessionService) CheckActive(email string) (*SessionStatus, error) {
	sess, err := s.Sessions.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SessionStatus{Active: false, State: model.SessionStateNone}, nil
		}
		return nil, err
	}

	if !sess.Active(s.Duration, s.now()) {
		return &SessionStatus{Active: false, State: model.SessionStateExpired}, nil
	}

	return &SessionStatus{
		Active: true,
		State:  model.SessionStateInProgress,
		Details: &SessionDetails{
			Email:          sess.Email,
			RegNo:          sess.RegNo,
			Department:     sess.Department,
			StartedAt:      sess.StartedAt,
			ExpiresAt:      sess.ExpiresAt(s.Duration),
			TotalQuestions: sess.TotalQuestions,
		},
	}, nil
}

// StartedSession is the candidate-facing payload of a fresh attempt. The
// answer key never leaves the server.
type StartedSession struct {
	Questions      []QuestionView           `json:"questions"`
	TotalQuestions int                      `json:"totalQuestions"`
	StartedAt      time.Time                `json:"startedAt"`
	ExpiresAt      time.Time                `json:"expiresAt"`
	Ranges         map[string]CategoryRange `json:"ranges"`
	Fill           map[string]CategoryFill  `json:"fill"`
}

// Start gates on the access code, refuses while any session row exists for
// the email (live or expired), composes a paper and records the attempt.
// A concurrent double-start is resolved by the unique index: the loser's
// insert comes back as a duplicate key and is reported as the same
// conflict, never retried and never overwriting the winner.
func (s *SessionService) Start(email, regNo, department, accessCode string) (*StartedSession, error) {
	email = normalizeEmail(email)

	active, err := s.Codes.Active()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidAccessCode
		}
		return nil, err
	}
	if strings.TrimSpace(accessCode) != active.Code {
		return nil, util.ErrInvalidAccessCode
	}

	if _, err := s.Sessions.FindByEmail(email); err == nil {
		return nil, util.ErrActiveSessionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	set, err := s.Composer.Compose(department)
	if err != nil {
		return nil, err
	}

	questionsJSON, err := json.Marshal(set.Questions)
	if err != nil {
		return nil, err
	}
	keyJSON, err := json.Marshal(set.AnswerKey)
	if err != nil {
		return nil, err
	}

	sess := &model.ExamSession{
		Email:          email,
		RegNo:          regNo,
		Department:     department,
		StartedAt:      s.now(),
		Questions:      questionsJSON,
		AnswerKey:      keyJSON,
		TotalQuestions: len(set.Questions),
	}
	if err := s.Sessions.Create(sess); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrActiveSessionExists
		}
		return nil, err
	}

	return &StartedSession{
		Questions:      set.Questions,
		TotalQuestions: sess.TotalQuestions,
		StartedAt:      sess.StartedAt,
		ExpiresAt:      sess.ExpiresAt(s.Duration),
		Ranges:         set.Ranges,
		Fill:           set.Fill,
	}, nil
}

type CompletionSummary struct {
	Email          string `json:"email"`
	RegNo          string `json:"regNo"`
	Department     string `json:"department"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Complete scores the submitted answers against the stored key and
// archives the attempt. Unanswered and out-of-range entries count as
// wrong. An expired-but-undeleted session still completes: the candidate's
// submission supersedes the soft expiry.
func (s *SessionService) Complete(email string, answers []*int) (*CompletionSummary, error) {
	email = normalizeEmail(email)

	sess, err := s.Sessions.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	var key []int
	if err := json.Unmarshal(sess.AnswerKey, &key); err != nil {
		return nil, err
	}

	ledger := RestoreSnapshot(LedgerSnapshot{Answers: answers}, len(key))
	score := scoreAnswers(key, ledger.Answers())

	result := &model.TestResult{
		Email:          sess.Email,
		RegNo:          sess.RegNo,
		Department:     sess.Department,
		Score:          score,
		TotalQuestions: len(key),
		CompletedAt:    s.now(),
	}
	if err := s.Results.Save(result); err != nil {
		return nil, err
	}
	if _, err := s.Sessions.DeleteByEmail(email); err != nil {
		return nil, err
	}
	s.dropProgress(email)

	return &CompletionSummary{
		Email:          result.Email,
		RegNo:          result.RegNo,
		Department:     result.Department,
		Score:          score,
		TotalQuestions: result.TotalQuestions,
	}, nil
}

// SearchCompleted looks up the archived result only. Live sessions are
// intentionally invisible here; admins use CheckActive for those, so a
// finished-result lookup can never resurrect a half-done attempt.
func (s *SessionService) SearchCompleted(email string) (*model.TestResult, error) {
	res, err := s.Results.FindByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	return res, nil
}

// AdminClear force-drops any session row for the email, expired or not,
// releasing the uniqueness lock so the candidate can start fresh. Clearing
// a candidate with no session is a no-op.
func (s *SessionService) AdminClear(email string) error {
	email = normalizeEmail(email)
	if _, err := s.Sessions.DeleteByEmail(email); err != nil {
		return err
	}
	s.dropProgress(email)
	return nil
}

// AdminReset deletes a completed result so the candidate may retake the
// test. Unlike AdminClear it is result-destructive and must target a real
// record.
func (s *SessionService) AdminReset(email string) error {
	count, err := s.Results.DeleteByEmail(normalizeEmail(email))
	if err != nil {
		return err
	}
	if count == 0 {
		return util.ErrResultNotFound
	}
	return nil
}

func scoreAnswers(key []int, answers []*int) int {
	score := 0
	for i, correct := range key {
		if i < len(answers) && answers[i] != nil && *answers[i] == correct {
			score++
		}
	}
	return score
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const progressKeyPrefix = "session:progress:"

// SaveProgress stashes the candidate's ledger snapshot in Redis so a
// crashed browser can resume. The stash is best-effort and never
// authoritative: scoring reads only the Complete payload.
func (s *SessionService) SaveProgress(ctx context.Context, email string, snap LedgerSnapshot) error {
	if s.Redis == nil {
		return nil
	}
	email = normalizeEmail(email)

	sess, err := s.Sessions.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}

	normalized := RestoreSnapshot(snap, sess.TotalQuestions).Snapshot()
	payload, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, progressKeyPrefix+email, payload, s.Duration).Err()
}

// GetProgress returns the stashed snapshot, or an empty ledger of the
// session's length when nothing was stashed yet.
func (s *SessionService) GetProgress(ctx context.Context, email string) (*LedgerSnapshot, error) {
	email = normalizeEmail(email)

	sess, err := s.Sessions.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	snap := NewAnswerLedger(sess.TotalQuestions).Snapshot()
	if s.Redis == nil {
		return &snap, nil
	}

	payload, err := s.Redis.Get(ctx, progressKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &snap, nil
		}
		return nil, err
	}

	var stored LedgerSnapshot
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}
	snap = RestoreSnapshot(stored, sess.TotalQuestions).Snapshot()
	return &snap, nil
}

func (s *SessionService) dropProgress(email string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), progressKeyPrefix+email)
}
