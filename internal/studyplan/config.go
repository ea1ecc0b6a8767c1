package studyplan

// Config controls the behavior of the Assembler.
type Config struct {
	// ChunkSize is the number of days generated per gateway call.
	ChunkSize int

	// MaxTokens is the token budget for each chunk response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// FallbackDuration is the duration stamped on synthesized fallback
	// tasks.
	FallbackDuration string
}

// DefaultConfig returns a Config with recommended defaults: 30-day chunks
// and 45-minute fallback tasks.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        30,
		MaxTokens:        4096,
		Temperature:      0.7,
		FallbackDuration: "45 mins",
	}
}
