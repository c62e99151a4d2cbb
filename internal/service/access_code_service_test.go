package service

import (
	"aptitude_portal_backend/internal/util"
	"testing"
)

func TestAccessCodeCurrentReseedsDefault(t *testing.T) {
	svc := NewAccessCodeService(&fakeCodeStore{})

	code, err := svc.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if code.Code != util.DefaultAccessCode {
		t.Errorf("code = %q, want default %q", code.Code, util.DefaultAccessCode)
	}
	if !code.IsActive {
		t.Error("re-seeded code is not active")
	}
}

func TestAccessCodeUpdateReplaces(t *testing.T) {
	store := &fakeCodeStore{}
	svc := NewAccessCodeService(store)

	code, err := svc.Update("  GATE2026 ")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if code.Code != "GATE2026" {
		t.Errorf("code = %q, want trimmed GATE2026", code.Code)
	}

	current, err := svc.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.Code != "GATE2026" {
		t.Errorf("Current after Update = %q", current.Code)
	}
}

func TestAccessCodeUpdateRejectsEmpty(t *testing.T) {
	svc := NewAccessCodeService(&fakeCodeStore{})

	for _, in := range []string{"", "   "} {
		if _, err := svc.Update(in); err == nil {
			t.Errorf("Update(%q) accepted an empty code", in)
		}
	}
}
