package studyplan

import (
	"fmt"
	"strings"

	"github.com/ravitej/prepmate/internal/quizgen"
	"github.com/ravitej/prepmate/internal/syllabus"
)

// safetyRule matches the rule appended to every structured prompt across the
// generation packages.
const safetyRule = `
IMPORTANT:
- You must NEVER return null or empty output.
- You must ALWAYS return valid JSON.
- If unsure, return a minimal valid structure instead of failing.`

// analysisContext flattens a quiz analysis into prompt variables, with safe
// defaults when no analysis exists.
type analysisContext struct {
	Score        int
	MathsAcc     string
	PhysicsAcc   string
	ChemistryAcc string
	WeakTopics   string
	StrongTopics string
}

func newAnalysisContext(analysis *quizgen.Analysis) analysisContext {
	ctx := analysisContext{
		MathsAcc:     "0%",
		PhysicsAcc:   "0%",
		ChemistryAcc: "0%",
		WeakTopics:   "None Detected",
		StrongTopics: "None",
	}
	if analysis == nil {
		return ctx
	}

	ctx.Score = analysis.Score
	if s, ok := analysis.SubjectStats[syllabus.SubjectMathematics]; ok {
		ctx.MathsAcc = s.Accuracy
	}
	if s, ok := analysis.SubjectStats[syllabus.SubjectPhysics]; ok {
		ctx.PhysicsAcc = s.Accuracy
	}
	if s, ok := analysis.SubjectStats[syllabus.SubjectChemistry]; ok {
		ctx.ChemistryAcc = s.Accuracy
	}
	if len(analysis.WeakTopics) > 0 {
		ctx.WeakTopics = joinTopics(analysis.WeakTopics)
	}
	if len(analysis.StrongTopics) > 0 {
		ctx.StrongTopics = joinTopics(analysis.StrongTopics)
	}
	return ctx
}

// joinTopics renders topic refs as "Topic (Subject), ..." for prompts.
func joinTopics(topics []quizgen.TopicRef) string {
	parts := make([]string, len(topics))
	for i, t := range topics {
		parts[i] = fmt.Sprintf("%s (%s)", t.Topic, t.Subject)
	}
	return strings.Join(parts, ", ")
}

// buildPersonalizedBase is the shared preamble for score-driven plan chunks.
func buildPersonalizedBase(profile Profile, analysis *quizgen.Analysis, days int) string {
	a := newAnalysisContext(analysis)

	var b strings.Builder
	b.WriteString("You are an expert EAMCET academic planner.\n")
	b.WriteString("Student Data:\n")
	fmt.Fprintf(&b, "- Score: %d/15\n", a.Score)
	fmt.Fprintf(&b, "- Maths: %s, Physics: %s, Chemistry: %s\n", a.MathsAcc, a.PhysicsAcc, a.ChemistryAcc)
	fmt.Fprintf(&b, "- Weak Areas (Focus Required): %s\n", a.WeakTopics)
	fmt.Fprintf(&b, "- Strong Areas: %s\n", a.StrongTopics)
	fmt.Fprintf(&b, "- Year: %s\n\n", profile.Year)

	fmt.Fprintf(&b, `Task: Generate a personalized %d-day study plan.
CRITICAL PROMPT RULES:
1. MANDATORY: Every single day MUST have exactly 3 tasks - one for Mathematics, one for Physics, and one for Chemistry.
2. PRIORITY PHASE: The plan MUST start by addressing the "Weak Areas" listed above. Dedicate the first few weeks strictly to these topics.
3. SYLLABUS PHASE: After covering weak areas, cover the remaining %s syllabus.
4. Each task duration: 40-50 mins (total daily: 2-2.5 hours).
5. Ensure no topic repeats excessively.
6. Cover the COMPLETE %s syllabus across all %d days.
Output: STRICT JSON.`, days, profile.Year, profile.Year, days)

	return b.String()
}

// buildFoundationalBase is the shared preamble for from-scratch plan chunks.
// It embeds the full in-scope syllabus so no chapter is left behind.
func buildFoundationalBase(profile Profile, days int) string {
	syllabusContext := syllabus.Context(syllabus.Stream(profile.Stream), syllabus.Year(profile.Year))

	var b strings.Builder
	b.WriteString("You are an expert EAMCET academic planner.\n")
	fmt.Fprintf(&b, "Student Goal: Starting Fresh (Foundational %d-Day Plan).\n", days)
	fmt.Fprintf(&b, "Target Year: %s\n", profile.Year)
	fmt.Fprintf(&b, "Stream: %s\n", profile.Stream)
	fmt.Fprintf(&b, "Board: %s\n\n", profile.Board)

	b.WriteString("SYLLABUS TO COVER COMPLETELY (MUST cover 100% of these chapters):\n")
	b.WriteString(syllabusContext)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `Task: Generate a comprehensive %d-day study plan that leaves NO chapter behind for %s.
CRITICAL PROMPT RULES:
1. MANDATORY: Every single day MUST have exactly 3 tasks - one for Mathematics, one for Physics, and one for Chemistry.
2. TOTAL COVERAGE: You MUST distribute all chapters from the syllabus provided above across the %d days.
3. STRUCTURE: Start from the very basics of each chapter and progress to advanced EAMCET-level problem solving.
4. Each task duration: 40-50 mins (total daily: 2-2.5 hours).
5. NO REPETITION: Ensure every major topic from the syllabus is covered without unnecessary duplication.
6. Language: Professional, encouraging EAMCET coach style.
Output: STRICT JSON.`, days, profile.Year, days)

	return b.String()
}

// buildChunkPrompt wraps a base prompt with the day window, the accumulated
// exclusion list, and the repetition rules for one chunk call.
func buildChunkPrompt(base string, start, end int, covered []string, year string) string {
	var b strings.Builder
	b.WriteString(base)
	fmt.Fprintf(&b, "\nGENERATE DAYS %d TO %d ONLY.\n", start, end)
	if len(covered) > 0 {
		fmt.Fprintf(&b, "ALREADY COVERED TOPICS (DO NOT REPEAT THESE): %s\n", strings.Join(covered, ", "))
	}

	fmt.Fprintf(&b, `
CRITICAL REPETITION RULES:
1. NO BACKTRACKING: Never return to a topic that was fully covered in previous days or chunks.
2. LINEAR SYLLABUS FLOW: Once a chapter is completed, strictly follow the %s syllabus order without jumping back.
3. DURATION: Each chapter should take exactly 1-3 days based on complexity, then MOVE ON.
4. Each day MUST have exactly 3 tasks (Maths, Physics, Chemistry).

Format:
{
   "days": {
       "day_%d": {
           "tasks": [
               { "subject": "Mathematics", "topic": "Specific Topic Header", "type": "Learning/Practice/Revision", "duration": "45 mins" },
               { "subject": "Physics", "topic": "Specific Topic Header", "type": "Learning/Practice/Revision", "duration": "45 mins" },
               { "subject": "Chemistry", "topic": "Specific Topic Header", "type": "Learning/Practice/Revision", "duration": "45 mins" }
           ]
       },
       ...
       "day_%d": { "tasks": [...] }
   }
}`, year, start, end)
	b.WriteString(safetyRule)

	return b.String()
}

// buildOverviewPrompt constructs the two-week sample plan prompt shown
// immediately after a diagnostic.
func buildOverviewPrompt(profile Profile, analysis *quizgen.Analysis) string {
	a := newAnalysisContext(analysis)
	weak := a.WeakTopics
	if analysis == nil || len(analysis.WeakTopics) == 0 {
		weak = "None detected (General improvement needed)"
	}

	var b strings.Builder
	b.WriteString("You are an expert EAMCET academic mentor.\n\n")
	b.WriteString("Student Quiz Dashboard Results:\n")
	fmt.Fprintf(&b, "- Overall Score: %d / 15\n", a.Score)
	b.WriteString("- Subject Scores:\n")
	fmt.Fprintf(&b, "  - Mathematics: %s accuracy\n", a.MathsAcc)
	fmt.Fprintf(&b, "  - Physics: %s accuracy\n", a.PhysicsAcc)
	fmt.Fprintf(&b, "  - Chemistry: %s accuracy\n", a.ChemistryAcc)
	fmt.Fprintf(&b, "- Weak Topics: %s\n", weak)
	fmt.Fprintf(&b, "- Strong Topics: %s\n", a.StrongTopics)
	fmt.Fprintf(&b, "- Selected Year: %s\n\n", profile.Year)

	b.WriteString(`Task:
Generate a personalized high-variety sample study plan.

CRITICAL PROGRESSION RULES:
1. NO TOPIC REPETITION: Once a chapter is covered across a few tasks, MOVE ON to the next chapter in the syllabus.
2. LINEAR FLOW: Do not jump back and forth between chapters. Complete one and proceed.
3. VARIETY: Ensure the week's schedule covers a wide range of different chapters from the syllabus.
4. Focus more time on weak subjects and weak topics.
5. Reduce repetition on strong topics.
6. Daily study time: 2-3 hours.

Output Format (STRICT JSON ONLY):
{
  "performance_summary": {
    "overall_level": "Beginner/Intermediate/Advanced",
    "focus_subjects": ["list of subjects needing most work"]
  },
  "priority_topics": ["list of top 5 distinct topics to attack first"],
  "sample_study_plan": {
    "week_1": {
       "focus": "Chapter names to be covered",
       "schedule": [
          {"day": "Day 1", "task": "Subject: Topic Name (Activity)"},
          {"day": "Day 2", "task": "Subject: Topic Name (Activity)"}
       ]
    },
    "week_2": {
       "focus": "Next chapters to be covered",
       "schedule": [ ... ]
    }
  },
  "revision_strategy": "One sentence strategy",
  "expected_improvement": "Short motivational prediction"
}

JSON only. NO repetition of topics within a week or between weeks.`)
	b.WriteString(safetyRule)

	return b.String()
}
