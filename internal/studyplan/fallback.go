package studyplan

import (
	"fmt"

	"github.com/ravitej/prepmate/internal/syllabus"
)

// fallbackSpec parameterizes synthesized days: what topic and activity each
// subject gets when the model omitted a day. Both assembler paths share the
// same synthesizer with different specs.
type fallbackSpec struct {
	Topics   map[string]string // per-subject topic
	Type     string
	Duration string
}

// personalizedFallback fills gaps in score-driven plans with revision work.
func personalizedFallback(duration string) fallbackSpec {
	return fallbackSpec{
		Topics: map[string]string{
			syllabus.SubjectMathematics: "Revision",
			syllabus.SubjectPhysics:     "Revision",
			syllabus.SubjectChemistry:   "Revision",
		},
		Type:     "Practice",
		Duration: duration,
	}
}

// foundationalFallback fills gaps in from-scratch plans with basics.
func foundationalFallback(duration string) fallbackSpec {
	return fallbackSpec{
		Topics: map[string]string{
			syllabus.SubjectMathematics: "Intro to Syllabus",
			syllabus.SubjectPhysics:     "Basics",
			syllabus.SubjectChemistry:   "Fundamentals",
		},
		Type:     "Theory",
		Duration: duration,
	}
}

// repairDay normalizes a model-provided day to exactly one task per subject.
// Each recognized subject keeps its first provided task (empty type or
// duration filled from the spec); tasks naming unknown subjects are dropped
// and missing subjects are synthesized.
func repairDay(dayNum int, provided []Task, spec fallbackSpec) Day {
	bySubject := make(map[string]Task, len(provided))
	for _, t := range provided {
		if _, known := spec.Topics[t.Subject]; !known {
			continue
		}
		if _, seen := bySubject[t.Subject]; seen {
			continue
		}
		if t.Type == "" {
			t.Type = spec.Type
		}
		if t.Duration == "" {
			t.Duration = spec.Duration
		}
		bySubject[t.Subject] = t
	}

	subjects := syllabus.Subjects()
	tasks := make([]Task, len(subjects))
	for i, subject := range subjects {
		if t, ok := bySubject[subject]; ok {
			tasks[i] = t
			continue
		}
		tasks[i] = Task{
			Subject:  subject,
			Topic:    spec.Topics[subject],
			Type:     spec.Type,
			Duration: spec.Duration,
		}
	}
	return Day{Day: dayNum, Tasks: tasks}
}

// Skeleton returns a minimally valid plan shape with empty week lists. The
// plan routes serve this as an absolute last resort so clients never receive
// an error body where a plan is expected.
func Skeleton(year string) *StudyPlan {
	days := totalDays(year)
	months := make(map[string]Month)
	for m := 1; m <= days/30; m++ {
		months[fmt.Sprintf("month_%d", m)] = Month{Weeks: []Week{}}
	}
	return &StudyPlan{
		StudentType:    year,
		PlanDuration:   fmt.Sprintf("%d Days", days),
		PriorityTopics: nil,
		MonthlyPlan:    months,
		Status:         "emergency_fallback",
	}
}

// totalDays maps the student's year to plan length: first-year and dropper
// tracks get the longer 90-day runway, second-year students get 60 days.
func totalDays(year string) int {
	if year == string(syllabus.YearSecond) {
		return 60
	}
	return 90
}
