package usecase

import (
	"context"
	"reflect"
	"testing"
)

func TestSkillGapUsecase_EchoesInputs(t *testing.T) {
	uc := NewSkillGapUsecase()
	got := uc.CalculateGap(context.Background(), []string{"Go"}, []string{"Go", "Rust"})

	if !reflect.DeepEqual(got.UserSkills, []string{"Go"}) {
		t.Fatalf("user skills must be echoed verbatim, got %v", got.UserSkills)
	}
	if !reflect.DeepEqual(got.RequiredSkills, []string{"Go", "Rust"}) {
		t.Fatalf("required skills must be echoed verbatim, got %v", got.RequiredSkills)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"Rust"}) {
		t.Fatalf("expected Rust missing, got %v", got.MissingSkills)
	}
}

func TestSkillGapUsecase_NilInputsBecomeEmpty(t *testing.T) {
	uc := NewSkillGapUsecase()
	got := uc.CalculateGap(context.Background(), nil, nil)

	if got.UserSkills == nil || got.RequiredSkills == nil || got.MissingSkills == nil {
		t.Fatalf("nil inputs must surface as empty slices: %+v", got)
	}
	if len(got.MissingSkills) != 0 {
		t.Fatalf("expected nothing missing, got %v", got.MissingSkills)
	}
}

func TestSkillGapUsecase_CaseInsensitive(t *testing.T) {
	uc := NewSkillGapUsecase()
	got := uc.CalculateGap(context.Background(), []string{"  GOLANG "}, []string{"golang", "Rust"})
	if !reflect.DeepEqual(got.MissingSkills, []string{"Rust"}) {
		t.Fatalf("comparison must ignore case and outer whitespace, got %v", got.MissingSkills)
	}
}
