package service

import (
	"aptitude_portal_backend/internal/model"
	"aptitude_portal_backend/internal/util"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// fakeQuestionSource serves deterministic pools keyed by category (and
// department for core).
type fakeQuestionSource struct {
	pools    map[string][]model.Question
	passages []model.ComprehensionPassage
}

func (f *fakeQuestionSource) SampleByCategory(category, subCategory string, limit int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.pools[category] {
		if subCategory != "" && q.SubCategory != subCategory {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestionSource) ListPassages() ([]model.ComprehensionPassage, error) {
	return f.passages, nil
}

func makeQuestions(category, subCategory string, n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			Category:      category,
			SubCategory:   subCategory,
			Prompt:        fmt.Sprintf("%s question %d", category, i),
			Options:       model.StringArray{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
		}
	}
	return qs
}

func makePassage(t *testing.T, text string, subCount int) model.ComprehensionPassage {
	t.Helper()
	subs := make([]model.SubQuestion, subCount)
	for i := range subs {
		subs[i] = model.SubQuestion{
			Prompt:        fmt.Sprintf("sub question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: (i + 1) % 4,
		}
	}
	raw, err := json.Marshal(subs)
	if err != nil {
		t.Fatalf("marshal sub questions: %v", err)
	}
	return model.ComprehensionPassage{Passage: text, SubQuestions: raw}
}

func stockedSource(t *testing.T) *fakeQuestionSource {
	t.Helper()
	return &fakeQuestionSource{
		pools: map[string][]model.Question{
			util.CategoryAptitude:    makeQuestions(util.CategoryAptitude, "", 15),
			util.CategoryCore:        append(makeQuestions(util.CategoryCore, "CSE", 25), makeQuestions(util.CategoryCore, "ECE", 25)...),
			util.CategoryVerbal:      makeQuestions(util.CategoryVerbal, "", 8),
			util.CategoryProgramming: makeQuestions(util.CategoryProgramming, "", 12),
		},
		passages: []model.ComprehensionPassage{makePassage(t, "The quick brown fox.", 5)},
	}
}

func newTestComposer(src QuestionSource) *ComposeService {
	return NewComposeService(src, rand.New(rand.NewSource(1)))
}

func TestComposeFullPaper(t *testing.T) {
	svc := newTestComposer(stockedSource(t))

	set, err := svc.Compose("CSE")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got, want := len(set.Questions), 50; got != want {
		t.Fatalf("question count = %d, want %d", got, want)
	}
	if got, want := len(set.AnswerKey), len(set.Questions); got != want {
		t.Fatalf("answer key length = %d, want %d", got, want)
	}

	wantRanges := map[string]CategoryRange{
		util.CategoryAptitude:      {Start: 0, End: 9},
		util.CategoryCore:          {Start: 10, End: 29},
		util.CategoryComprehension: {Start: 30, End: 34},
		util.CategoryVerbal:        {Start: 35, End: 39},
		util.CategoryProgramming:   {Start: 40, End: 49},
	}
	for category, want := range wantRanges {
		if got := set.Ranges[category]; got != want {
			t.Errorf("range[%s] = %+v, want %+v", category, got, want)
		}
	}

	// Core block must only hold the requested department.
	for i := 10; i <= 29; i++ {
		if !strings.HasPrefix(set.Questions[i].Prompt, "core question") {
			t.Errorf("position %d: got %q, want core question", i, set.Questions[i].Prompt)
		}
	}
}

func TestComposeComprehensionExpansion(t *testing.T) {
	svc := newTestComposer(stockedSource(t))

	set, err := svc.Compose("CSE")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	r := set.Ranges[util.CategoryComprehension]
	if r.End-r.Start+1 != util.ComprehensionSubQuestions {
		t.Fatalf("comprehension block size = %d, want %d", r.End-r.Start+1, util.ComprehensionSubQuestions)
	}

	for i := r.Start; i <= r.End; i++ {
		q := set.Questions[i]
		if !strings.HasPrefix(q.Prompt, "The quick brown fox.") {
			t.Errorf("position %d: prompt does not start with the passage text: %q", i, q.Prompt)
		}
		if !strings.Contains(q.Prompt, "\n\n") {
			t.Errorf("position %d: passage and sub-question are not separated", i)
		}
		if got, want := set.AnswerKey[i], (i-r.Start+1)%4; got != want {
			t.Errorf("answer key[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestComposeThinCorePool(t *testing.T) {
	src := stockedSource(t)
	src.pools[util.CategoryCore] = makeQuestions(util.CategoryCore, "CSE", 7)
	svc := newTestComposer(src)

	set, err := svc.Compose("CSE")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got, want := len(set.Questions), 50-(util.CoreQuota-7); got != want {
		t.Fatalf("question count = %d, want %d", got, want)
	}
	fill := set.Fill[util.CategoryCore]
	if fill.Requested != util.CoreQuota || fill.Fulfilled != 7 {
		t.Errorf("core fill = %+v, want {Requested:%d Fulfilled:7}", fill, util.CoreQuota)
	}

	// Later blocks shift left rather than leaving holes.
	if got, want := set.Ranges[util.CategoryComprehension].Start, 17; got != want {
		t.Errorf("comprehension start = %d, want %d", got, want)
	}
	if got, want := len(set.AnswerKey), len(set.Questions); got != want {
		t.Errorf("answer key length = %d, want %d", got, want)
	}
}

func TestComposeUnknownDepartment(t *testing.T) {
	svc := newTestComposer(stockedSource(t))

	set, err := svc.Compose("NOSUCH")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got := set.Fill[util.CategoryCore].Fulfilled; got != 0 {
		t.Errorf("core fulfilled = %d, want 0 for unknown department", got)
	}
	if got, want := len(set.Questions), 30; got != want {
		t.Errorf("question count = %d, want %d", got, want)
	}
}

func TestComposeEmptyPassagePool(t *testing.T) {
	src := stockedSource(t)
	src.passages = nil
	svc := newTestComposer(src)

	set, err := svc.Compose("CSE")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if got, want := len(set.Questions), 45; got != want {
		t.Fatalf("question count = %d, want %d", got, want)
	}
	fill := set.Fill[util.CategoryComprehension]
	if fill.Fulfilled != 0 {
		t.Errorf("comprehension fulfilled = %d, want 0", fill.Fulfilled)
	}
	r := set.Ranges[util.CategoryComprehension]
	if r.End >= r.Start {
		t.Errorf("comprehension range %+v should be empty", r)
	}
	// Verbal follows immediately after core.
	if got, want := set.Ranges[util.CategoryVerbal].Start, 30; got != want {
		t.Errorf("verbal start = %d, want %d", got, want)
	}
}

func TestComposeSharedPassageText(t *testing.T) {
	src := stockedSource(t)
	src.passages = []model.ComprehensionPassage{
		makePassage(t, "Passage one.", 5),
		makePassage(t, "Passage two.", 5),
	}
	svc := newTestComposer(src)

	set, err := svc.Compose("ECE")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	r := set.Ranges[util.CategoryComprehension]
	first := set.Questions[r.Start].Prompt
	passage := first[:strings.Index(first, "\n\n")]
	for i := r.Start; i <= r.End; i++ {
		if !strings.HasPrefix(set.Questions[i].Prompt, passage) {
			t.Errorf("position %d drew from a different passage", i)
		}
	}
}
