package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/util"
	"math/rand"
	"sync"
)

// QuestionSource is the slice of the question bank the composer needs.
// Implemented by repository.QuestionRepository; tests plug in a fake.
type QuestionSource interface {
	SampleByCategory(category, subCategory string, limit int) ([]model.Question, error)
	ListPassages() ([]model.ComprehensionPassage, error)
}

// QuestionView is the candidate-facing shape of one question: prompt and
// options only, never the answer index.
type QuestionView struct {
	Category string   `json:"category"`
	Prompt   string   `json:"question"`
	Options  []string `json:"options"`
}

// CategoryFill reports how much of a category's quota the bank could
// actually satisfy. Callers that insist on a full paper check these
// instead of assuming the canonical length.
type CategoryFill struct {
	Requested int `json:"requested"`
	Fulfilled int `json:"fulfilled"`
}

// CategoryRange is a contiguous block [Start, End] inside the composed
// paper. End < Start means the block is empty. Ranges are computed from
// the actual draw, so a thin pool shifts the later blocks instead of
// leaving holes.
type CategoryRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ComposedSet is the materialized paper of one composition: questions and
// the parallel answer key, always equal in length, plus per-category
// bookkeeping.
type ComposedSet struct {
	Questions []QuestionView           `json:"questions"`
	AnswerKey []int                    `json:"answers"`
	Ranges    map[string]CategoryRange `json:"ranges"`
	Fill      map[string]CategoryFill  `json:"fill"`
}

// ComposeService builds one test paper per attempt: a fixed quota from
// each pool plus one comprehension passage expanded into its
// sub-questions, in fixed block order (aptitude, core, comprehension,
// verbal, programming).
type ComposeService struct {
	Source QuestionSource

	mu  sync.Mutex
	rng *rand.Rand
}

func NewComposeService(source QuestionSource, rng *rand.Rand) *ComposeService {
	return &ComposeService{Source: source, rng: rng}
}

// Compose draws the paper for one department. Pool underflow is not an
// error: each block contributes what its pool holds and the fill counts
// record the shortfall. An empty passage pool simply omits the
// comprehension block.
func (s *ComposeService) Compose(department string) (*ComposedSet, error) {
	set := &ComposedSet{
		Questions: make([]QuestionView, 0, util.AptitudeQuota+util.CoreQuota+util.ComprehensionSubQuestions+util.VerbalQuota+util.ProgrammingQuota),
		AnswerKey: make([]int, 0, 50),
		Ranges:    make(map[string]CategoryRange, 5),
		Fill:      make(map[string]CategoryFill, 5),
	}

	if err := s.appendPool(set, util.CategoryAptitude, "", util.AptitudeQuota); err != nil {
		return nil, err
	}
	if err := s.appendPool(set, util.CategoryCore, department, util.CoreQuota); err != nil {
		return nil, err
	}
	if err := s.appendComprehension(set); err != nil {
		return nil, err
	}
	if err := s.appendPool(set, util.CategoryVerbal, "", util.VerbalQuota); err != nil {
		return nil, err
	}
	if err := s.appendPool(set, util.CategoryProgramming, "", util.ProgrammingQuota); err != nil {
		return nil, err
	}

	return set, nil
}

func (s *ComposeService) appendPool(set *ComposedSet, category, subCategory string, quota int) error {
	qs, err := s.Source.SampleByCategory(category, subCategory, quota)
	if err != nil {
		return err
	}
	start := len(set.Questions)
	for _, q := range qs {
		set.Questions = append(set.Questions, QuestionView{
			Category: q.Category,
			Prompt:   q.Prompt,
			Options:  append([]string(nil), q.Options...),
		})
		set.AnswerKey = append(set.AnswerKey, q.CorrectAnswer)
	}
	set.Ranges[category] = CategoryRange{Start: start, End: len(set.Questions) - 1}
	set.Fill[category] = CategoryFill{Requested: quota, Fulfilled: len(qs)}
	return nil
}

// appendComprehension picks one passage uniformly at random and expands it
// into one entry per sub-question. Each entry repeats the full passage
// ahead of its own prompt so the candidate always sees the text; the
// expanded entries are labelled verbal, matching how the category
// navigator groups them with the verbal block.
func (s *ComposeService) appendComprehension(set *ComposedSet) error {
	passages, err := s.Source.ListPassages()
	if err != nil {
		return err
	}

	start := len(set.Questions)
	if len(passages) == 0 {
		set.Ranges[util.CategoryComprehension] = CategoryRange{Start: start, End: start - 1}
		set.Fill[util.CategoryComprehension] = CategoryFill{Requested: util.ComprehensionSubQuestions, Fulfilled: 0}
		return nil
	}

	s.mu.Lock()
	picked := passages[s.rng.Intn(len(passages))]
	s.mu.Unlock()

	subs, err := picked.DecodeSubQuestions()
	if err != nil {
		return err
	}
	for _, sq := range subs {
		set.Questions = append(set.Questions, QuestionView{
			Category: util.CategoryVerbal,
			Prompt:   picked.Passage + "\n\n" + sq.Prompt,
			Options:  append([]string(nil), sq.Options...),
		})
		set.AnswerKey = append(set.AnswerKey, sq.CorrectAnswer)
	}
	set.Ranges[util.CategoryComprehension] = CategoryRange{Start: start, End: len(set.Questions) - 1}
	set.Fill[util.CategoryComprehension] = CategoryFill{Requested: util.ComprehensionSubQuestions, Fulfilled: len(subs)}
	return nil
}
