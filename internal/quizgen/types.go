package quizgen

// Question is one diagnostic MCQ shown to the student. Diagnostic questions
// deliberately carry no correct answer or explanation; grading happens
// server-side in Analyze.
type Question struct {
	ID       int      `json:"id"`
	Subject  string   `json:"subject"`
	Topic    string   `json:"topic"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// PracticeQuestion is one topic-practice MCQ, including the answer key and a
// worked explanation for self-study.
type PracticeQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// AnswerRecord is one submitted answer with timing, as reported by the client.
type AnswerRecord struct {
	ID          int    `json:"id"`
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Question    string `json:"question"`
	Selected    string `json:"selected"`
	TimeSeconds int    `json:"timeSeconds"`
}

// SubjectStat is per-subject accuracy within a diagnostic attempt.
type SubjectStat struct {
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Accuracy string `json:"accuracy"`
}

// TopicRef names a topic within a subject.
type TopicRef struct {
	Topic   string `json:"topic"`
	Subject string `json:"subject"`
}

// Analysis is the graded outcome of a diagnostic quiz.
type Analysis struct {
	Score            int                    `json:"score"`
	Total            int                    `json:"total"`
	SubjectStats     map[string]SubjectStat `json:"subjectStats"`
	WeakTopics       []TopicRef             `json:"weakTopics"`
	StrongTopics     []TopicRef             `json:"strongTopics"`
	OverallReadiness string                 `json:"overallReadiness"`
	SpeedAnalysis    string                 `json:"speedAnalysis"`
	Feedback         string                 `json:"feedback"`
}
