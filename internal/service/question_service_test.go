package service

import (
	"aptitude_portal_backend/internal/util"
	"errors"
	"testing"
)

// Validation fires before any repository call, so a nil repo is enough
// for the rejection paths.

func TestAddQuestionRejectsBadShape(t *testing.T) {
	svc := NewQuestionService(nil, nil)

	valid := QuestionReq{
		Category:      util.CategoryAptitude,
		Prompt:        "2 + 2?",
		Options:       []string{"1", "2", "3", "4"},
		CorrectAnswer: ptr(3),
	}

	tests := []struct {
		name   string
		mutate func(*QuestionReq)
		want   error
	}{
		{"unknown category", func(r *QuestionReq) { r.Category = "history" }, util.ErrInvalidCategory},
		{"three options", func(r *QuestionReq) { r.Options = r.Options[:3] }, util.ErrInvalidQuestion},
		{"five options", func(r *QuestionReq) { r.Options = append(r.Options, "5") }, util.ErrInvalidQuestion},
		{"missing answer", func(r *QuestionReq) { r.CorrectAnswer = nil }, util.ErrInvalidQuestion},
		{"answer past last option", func(r *QuestionReq) { r.CorrectAnswer = ptr(4) }, util.ErrInvalidQuestion},
		{"negative answer", func(r *QuestionReq) { r.CorrectAnswer = ptr(-1) }, util.ErrInvalidQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Options = append([]string(nil), valid.Options...)
			tt.mutate(&req)
			if _, err := svc.AddQuestion(req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddPassageRejectsWrongSubQuestionCount(t *testing.T) {
	svc := NewQuestionService(nil, nil)

	sub := SubQuestionReq{
		Prompt:        "What does the author imply?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: ptr(0),
	}

	for _, n := range []int{0, 4, 6} {
		subs := make([]SubQuestionReq, n)
		for i := range subs {
			subs[i] = sub
		}
		req := PassageReq{Passage: "A short passage.", SubQuestions: subs}
		if _, err := svc.AddPassage(req); !errors.Is(err, util.ErrInvalidPassage) {
			t.Errorf("%d sub-questions: err = %v, want ErrInvalidPassage", n, err)
		}
	}
}

func TestAddPassageRejectsBadSubQuestion(t *testing.T) {
	svc := NewQuestionService(nil, nil)

	subs := []SubQuestionReq{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: ptr(0)},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: ptr(1)},
		{Prompt: "q3", Options: []string{"a", "b"}, CorrectAnswer: ptr(1)},
		{Prompt: "q4", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: ptr(2)},
		{Prompt: "q5", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: ptr(3)},
	}
	req := PassageReq{Passage: "A short passage.", SubQuestions: subs}
	if _, err := svc.AddPassage(req); !errors.Is(err, util.ErrInvalidQuestion) {
		t.Errorf("err = %v, want ErrInvalidQuestion", err)
	}
}
