package quizgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ravitej/prepmate/internal/syllabus"
)

func TestBuildDiagnosticPrompt_FirstYearScoping(t *testing.T) {
	prompt := buildDiagnosticPrompt(syllabus.StreamMPC, syllabus.YearFirst, syllabus.SubjectPhysics, 5, nil, 40)

	if !strings.Contains(prompt, "ONLY Intermediate 1st Year topics") {
		t.Error("1st year prompt must restrict to 1st year topics")
	}
	if strings.Contains(prompt, "Electromagnetic Induction") {
		t.Error("1st year prompt must not contain 2nd year chapters")
	}
	if !strings.Contains(prompt, "Laws of Motion") {
		t.Error("expected 1st year physics chapters in prompt")
	}
	if !strings.Contains(prompt, "NEVER return null") {
		t.Error("expected safety rule appended")
	}
}

func TestBuildDiagnosticPrompt_SecondYearMix(t *testing.T) {
	prompt := buildDiagnosticPrompt(syllabus.StreamMPC, syllabus.YearSecond, syllabus.SubjectMathematics, 5, nil, 40)

	if !strings.Contains(prompt, "Balanced mix of 1st and 2nd Year topics") {
		t.Error("2nd year prompt must mix both years")
	}
	if !strings.Contains(prompt, "1st Year Topics:") || !strings.Contains(prompt, "2nd Year Topics:") {
		t.Error("expected both year topic lists")
	}
	if !strings.Contains(prompt, "Coordinate Geometry (30%)") {
		t.Error("expected maths weightage guideline")
	}
}

func TestBuildDiagnosticPrompt_HistoryExclusion(t *testing.T) {
	history := []string{"Circle", "Probability"}
	prompt := buildDiagnosticPrompt(syllabus.StreamMPC, syllabus.YearSecond, syllabus.SubjectMathematics, 5, history, 40)

	if !strings.Contains(prompt, "EXCLUDE these previously used topics: Circle, Probability.") {
		t.Error("expected history exclusion clause")
	}

	// No history, no clause.
	prompt = buildDiagnosticPrompt(syllabus.StreamMPC, syllabus.YearSecond, syllabus.SubjectMathematics, 5, nil, 40)
	if strings.Contains(prompt, "EXCLUDE") {
		t.Error("unexpected exclusion clause without history")
	}
}

func TestBuildHistory_CapsToMostRecent(t *testing.T) {
	var history []string
	for i := range 50 {
		history = append(history, fmt.Sprintf("Topic %d", i))
	}

	clause := buildHistory(history, 40)
	if strings.Contains(clause, "Topic 0,") {
		t.Error("oldest topics should be dropped")
	}
	if !strings.Contains(clause, "Topic 49") {
		t.Error("newest topic should be kept")
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	answers := []AnswerRecord{
		{ID: 1, Subject: "Physics", Topic: "Waves", Question: "Speed of sound?", Selected: "C", TimeSeconds: 18},
	}
	prompt := buildAnalysisPrompt(answers, 15)

	if !strings.Contains(prompt, `"Waves"`) {
		t.Error("expected submitted answers serialized into prompt")
	}
	if !strings.Contains(prompt, "out of 15") {
		t.Error("expected total in grading instructions")
	}
	if !strings.Contains(prompt, `"accuracy": "X%"`) {
		t.Error("expected output format contract")
	}
}

func TestBuildPracticePrompt(t *testing.T) {
	prompt := buildPracticePrompt("Parabola", "Mathematics", 10)

	if !strings.Contains(prompt, "Subject: Mathematics") || !strings.Contains(prompt, "Topic: Parabola") {
		t.Error("expected subject and topic in prompt")
	}
	if !strings.Contains(prompt, `"correctAnswer": 2`) {
		t.Error("expected answer-key output contract")
	}
}
