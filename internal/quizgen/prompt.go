package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ravitej/prepmate/internal/syllabus"
)

// safetyRule is appended to every structured prompt. Small models
// occasionally return null or prose instead of JSON; this keeps the failure
// mode inside the schema.
const safetyRule = `
IMPORTANT:
- You must NEVER return null or empty output.
- You must ALWAYS return valid JSON.
- If unsure, return a minimal valid structure instead of failing.`

// weightageGuidelines encode per-subject topic weightage observed in past
// EAMCET papers. They steer the model toward high-yield chapters.
var weightageGuidelines = map[string]string{
	syllabus.SubjectMathematics: "Focus on Coordinate Geometry (30%), Calculus (12%), and Vector Algebra (8%). Include EAMCET-level MCQ patterns.",
	syllabus.SubjectPhysics:     "Prioritize Mechanics (25%), Thermodynamics (10%), and Electrodynamics/Magnetism (10%).",
	syllabus.SubjectChemistry:   "Focus on Organic Hydrocarbons (20%), Inorganic s-p-d-f blocks (17%), and Atomic Structure.",
}

// buildDiagnosticPrompt constructs the per-subject diagnostic quiz prompt.
// 1st Year students are scoped to 1st year chapters only; everyone else gets
// a balanced mix across both years.
func buildDiagnosticPrompt(stream syllabus.Stream, year syllabus.Year, subject string, count int, history []string, maxHistory int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a Senior EAMCET (Telangana & Andhra Pradesh) Examiner.\n")
	fmt.Fprintf(&b, "Generate exactly %d diagnostic MCQs for %s.\n", count, subject)
	fmt.Fprintf(&b, "Student Category: %s.\n\n", year)

	b.WriteString("SYLLABUS & WEIGHTAGE RULES:\n")
	if year == syllabus.YearFirst {
		fmt.Fprintf(&b, "- ONLY Intermediate 1st Year topics. Topics: %s\n",
			topicsJSON(stream, syllabus.YearFirst, subject))
	} else {
		b.WriteString("- Balanced mix of 1st and 2nd Year topics.\n")
		fmt.Fprintf(&b, "  1st Year Topics: %s\n", topicsJSON(stream, syllabus.YearFirst, subject))
		fmt.Fprintf(&b, "  2nd Year Topics: %s\n", topicsJSON(stream, syllabus.YearSecond, subject))
	}
	fmt.Fprintf(&b, "- %s\n", weightageGuidelines[subject])
	if hist := buildHistory(history, maxHistory); hist != "" {
		fmt.Fprintf(&b, "- %s\n", hist)
	}

	b.WriteString(`
Format: JSON Object labeled "questions".
Each question object MUST contain:
- subject: string ("Mathematics", "Physics", or "Chemistry")
- topic: string (Specific Chapter Name)
- question: string (The problem to solve)
- options: string[] (exactly 4 multiple-choice options)

IMPORTANT RULES:
- Generate ONLY questions and options.
- Do NOT include correct answers.
- Do NOT include explanations.
- Do NOT include solution steps.
- Output must be suitable for a game-style quiz (concise questions).
Difficulty: High-yield EAMCET standard.`)
	b.WriteString(safetyRule)

	return b.String()
}

// buildHistory formats previously-used topics as an exclusion clause,
// keeping only the most recent entries.
func buildHistory(history []string, max int) string {
	if len(history) == 0 {
		return ""
	}
	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}
	return fmt.Sprintf("EXCLUDE these previously used topics: %s.", strings.Join(history, ", "))
}

// buildAnalysisPrompt constructs the grading prompt for submitted answers.
func buildAnalysisPrompt(answers []AnswerRecord, total int) string {
	answersJSON, _ := json.Marshal(answers)

	var b strings.Builder
	b.WriteString("You are an Expert EAMCET Grader.\n")
	fmt.Fprintf(&b, "Analyze these user selections and completion times for a game-style diagnostic quiz: %s\n\n", answersJSON)

	fmt.Fprintf(&b, `TASK:
1. Evaluate each selection against the question for correctness.
2. Calculate total score (out of %d) and subject-wise accuracy.
3. Analyze speed: If a student answers correctly under 20s, mark as "Mastery". If correct but >45s, mark as "Needs Improvement".

Format: JSON {
    "score": number,
    "total": %d,
    "subjectStats": {
        "Mathematics": {"score": number, "total": 5, "accuracy": "X%%"},
        "Physics": {"score": number, "total": 5, "accuracy": "X%%"},
        "Chemistry": {"score": number, "total": 5, "accuracy": "X%%"}
    },
    "weakTopics": [{ "topic": "Topic Name", "subject": "Maths/Physics/Chemistry" }],
    "strongTopics": [{ "topic": "Topic Name", "subject": "Maths/Physics/Chemistry" }],
    "overallReadiness": "Beginner/Intermediate/Advanced",
    "speedAnalysis": "Average time per question/overall pace",
    "feedback": "Brief motivational comment"
}`, total, total)
	b.WriteString(safetyRule)

	return b.String()
}

// buildPracticePrompt constructs the topic practice quiz prompt, answer key
// and explanations included.
func buildPracticePrompt(topic, subject string, count int) string {
	var b strings.Builder

	b.WriteString("You are an expert EAMCET Entrance Exam Professor.\n")
	fmt.Fprintf(&b, "Generate exactly %d high-quality Multiple Choice Questions (MCQs) specifically modeled after the EAMCET (Engineering Agricultural and Medical Common Entrance Test) pattern.\n\n", count)
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)

	fmt.Fprintf(&b, `Requirements:
1. Difficulty: Balanced (Mix of Concept-based, Application-based, and Calculation-based).
2. Format: Question, 4 options, 1 correct index (0-3).
3. Explanation: Provide a detailed, pedagogical explanation for the correct answer to help the student learn.
4. Syllabus: Strictly adhere to the %s syllabus for EAMCET.

STRICT JSON OUTPUT:
{
  "questions": [
    {
      "question": "Clear question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 2,
      "explanation": "Step-by-step reasoning for why Option C is correct."
    }
  ]
}`, subject)
	b.WriteString(safetyRule)

	return b.String()
}

func topicsJSON(stream syllabus.Stream, year syllabus.Year, subject string) string {
	topics := syllabus.SubjectChapters(stream, year, subject)
	if topics == nil {
		topics = []string{}
	}
	b, _ := json.Marshal(topics)
	return string(b)
}
