package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// QuestionsPerSubject is how many diagnostic questions each subject
	// contributes.
	QuestionsPerSubject int

	// MaxQuestions caps the assembled diagnostic quiz.
	MaxQuestions int

	// PracticeCount is the default size of a topic practice quiz.
	PracticeCount int

	// MaxTokens is the token budget for LLM responses.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxHistoryTopics is the maximum number of previously-used topics
	// to include in the prompt for deduplication.
	MaxHistoryTopics int
}

// DefaultConfig returns a Config with recommended defaults: a 15-question
// diagnostic split 5/5/5 across the three subjects.
func DefaultConfig() Config {
	return Config{
		QuestionsPerSubject: 5,
		MaxQuestions:        15,
		PracticeCount:       10,
		MaxTokens:           4096,
		Temperature:         0.7,
		MaxHistoryTopics:    40,
	}
}
