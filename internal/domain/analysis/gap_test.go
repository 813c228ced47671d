package analysis

import (
	"reflect"
	"testing"
)

func TestMissingSkills_SetDifferenceSorted(t *testing.T) {
	got := MissingSkills([]string{"Go", "SQL"}, []string{"Terraform", "Go", "AWS"})
	if !reflect.DeepEqual(got, []string{"AWS", "Terraform"}) {
		t.Fatalf("expected sorted missing skills, got %v", got)
	}
}

func TestMissingSkills_CaseAndWhitespaceInsensitive(t *testing.T) {
	got := MissingSkills([]string{"  PYTHON "}, []string{"python", "Go"})
	if !reflect.DeepEqual(got, []string{"Go"}) {
		t.Fatalf("expected only Go missing, got %v", got)
	}
}

func TestMissingSkills_NoFuzzyMatching(t *testing.T) {
	// PostgreSQL covers SQL in the analyzer, but not here: this check is
	// exact set difference only.
	got := MissingSkills([]string{"PostgreSQL"}, []string{"SQL"})
	if !reflect.DeepEqual(got, []string{"SQL"}) {
		t.Fatalf("expected SQL missing under exact comparison, got %v", got)
	}
}

func TestMissingSkills_OriginalWhitespacePreserved(t *testing.T) {
	got := MissingSkills([]string{"  Python  "}, []string{"Python", "  TypeScript  "})
	if !reflect.DeepEqual(got, []string{"  TypeScript  "}) {
		t.Fatalf("missing entries must keep their original whitespace, got %q", got)
	}
}

func TestMissingSkills_DuplicatesCollapseToFirstCasing(t *testing.T) {
	got := MissingSkills(nil, []string{"Docker", "docker", "DOCKER"})
	if !reflect.DeepEqual(got, []string{"Docker"}) {
		t.Fatalf("expected one entry with first-seen casing, got %v", got)
	}
}

func TestMissingSkills_EmptyInputs(t *testing.T) {
	if got := MissingSkills(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := MissingSkills([]string{"Go"}, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMissingSkills_Idempotent(t *testing.T) {
	user := []string{"Go"}
	required := []string{"Rust", "Go"}
	first := MissingSkills(user, required)
	second := MissingSkills(user, required)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("result must be stable across calls: %v vs %v", first, second)
	}
}
