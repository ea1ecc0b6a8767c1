package syllabus

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestForYear(t *testing.T) {
	ys, ok := ForYear(StreamMPC, YearFirst)
	if !ok {
		t.Fatal("expected MPC 1st Year syllabus")
	}
	if len(ys.Mathematics["Maths IA"]) != 10 {
		t.Errorf("Maths IA chapters = %d, want 10", len(ys.Mathematics["Maths IA"]))
	}
	if len(ys.Physics) != 14 {
		t.Errorf("1st year Physics chapters = %d, want 14", len(ys.Physics))
	}

	if _, ok := ForYear("BiPC", YearFirst); ok {
		t.Error("expected unknown stream to report not found")
	}
	if _, ok := ForYear(StreamMPC, "3rd Year"); ok {
		t.Error("expected unknown year to report not found")
	}
}

func TestSubjectChaptersFlattensMaths(t *testing.T) {
	chapters := SubjectChapters(StreamMPC, YearSecond, SubjectMathematics)
	if len(chapters) != 18 {
		t.Fatalf("2nd year maths chapters = %d, want 18", len(chapters))
	}
	// IIA before IIB.
	if chapters[0] != "Complex Numbers" {
		t.Errorf("first chapter = %q, want Complex Numbers", chapters[0])
	}
	if chapters[len(chapters)-1] != "Differential Equations" {
		t.Errorf("last chapter = %q, want Differential Equations", chapters[len(chapters)-1])
	}
}

func TestScopedChapters(t *testing.T) {
	first := ScopedChapters(StreamMPC, YearFirst)
	if slices.Contains(first, "Electrochemistry and Chemical Kinetics") {
		t.Error("1st year scope must not contain 2nd year chapters")
	}
	if !slices.Contains(first, "Laws of Motion") {
		t.Error("1st year scope missing 1st year chapter")
	}

	second := ScopedChapters(StreamMPC, YearSecond)
	if !slices.Contains(second, "Laws of Motion") || !slices.Contains(second, "Integration") {
		t.Error("2nd year scope must contain both years")
	}
	if len(second) <= len(first) {
		t.Errorf("2nd year scope (%d) should be larger than 1st year scope (%d)", len(second), len(first))
	}
}

func TestContextIsValidJSON(t *testing.T) {
	for _, year := range []Year{YearFirst, YearSecond, "Dropper"} {
		ctx := Context(StreamMPC, year)
		var parsed map[string]any
		if err := json.Unmarshal([]byte(ctx), &parsed); err != nil {
			t.Fatalf("year %q: context is not valid JSON: %v", year, err)
		}
	}
}

func TestContextScoping(t *testing.T) {
	first := Context(StreamMPC, YearFirst)
	if strings.Contains(first, "Definite Integrals") {
		t.Error("1st year context must not leak 2nd year chapters")
	}
	if !strings.Contains(first, "Trigonometric Equations") {
		t.Error("1st year context missing 1st year chapter")
	}

	dropper := Context(StreamMPC, "Dropper")
	if !strings.Contains(dropper, "1st_Year") || !strings.Contains(dropper, "2nd_Year") {
		t.Error("dropper context must combine both years")
	}
}

func TestUnknownStreamContext(t *testing.T) {
	if got := Context("BiPC", YearFirst); got != "{}" {
		t.Errorf("unknown stream context = %q, want empty object", got)
	}
}
