package studyplan

import "github.com/ravitej/prepmate/internal/quizgen"

// Task is one study activity. Every assembled day carries exactly one task
// per subject.
type Task struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

// Day is one calendar day of the plan.
type Day struct {
	Day   int    `json:"day"`
	Tasks []Task `json:"tasks"`
}

// Week groups up to 7 consecutive days. The final week of a month holds the
// remainder (30 is not divisible by 7).
type Week struct {
	Week int   `json:"week"`
	Days []Day `json:"days"`
}

// Month is a fixed 30-day window with a theme label.
type Month struct {
	Theme string `json:"theme"`
	Weeks []Week `json:"weeks"`
}

// StudyPlan is the top-level plan document served to clients.
type StudyPlan struct {
	StudentType        string             `json:"student_type"`
	PlanDuration       string             `json:"plan_duration"`
	PerformanceSummary string             `json:"performance_summary,omitempty"`
	PriorityTopics     []quizgen.TopicRef `json:"priority_topics"`
	MonthlyPlan        map[string]Month   `json:"monthly_plan"`
	Status             string             `json:"status,omitempty"`
}

// Profile describes the student requesting a plan.
type Profile struct {
	Year      string `json:"year"`
	Stream    string `json:"stream"`
	Board     string `json:"board"`
	StartType string `json:"startType"`
}

// chunkDay is one day inside a raw LLM chunk response.
type chunkDay struct {
	Tasks []Task `json:"tasks"`
}

// PlanChunk maps "day_N" keys to their tasks, as produced by one chunk call.
type PlanChunk map[string]chunkDay

// Overview is the quick two-week sample plan shown on the results page
// before the student commits to a full plan.
type Overview struct {
	PerformanceSummary  OverviewSummary         `json:"performance_summary"`
	PriorityTopics      []string                `json:"priority_topics"`
	SampleStudyPlan     map[string]OverviewWeek `json:"sample_study_plan"`
	RevisionStrategy    string                  `json:"revision_strategy"`
	ExpectedImprovement string                  `json:"expected_improvement"`
}

// OverviewSummary is the headline assessment in an Overview.
type OverviewSummary struct {
	OverallLevel  string   `json:"overall_level"`
	FocusSubjects []string `json:"focus_subjects"`
}

// OverviewWeek is one sample week with a focus line and a 7-day schedule.
type OverviewWeek struct {
	Focus    string        `json:"focus"`
	Schedule []OverviewDay `json:"schedule"`
}

// OverviewDay is one line of a sample schedule.
type OverviewDay struct {
	Day  string `json:"day"`
	Task string `json:"task"`
}
