// Package tutor provides the conversational tutor and topic study notes.
// Both produce plain text, not JSON: output is sanitized rather than
// schema-validated, and failures degrade to fixed strings so the chat UI
// never surfaces an error body.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ravitej/prepmate/internal/llm"
	"github.com/ravitej/prepmate/internal/syllabus"
)

// chatApology is returned when the chat call fails.
const chatApology = "Sorry, I'm having trouble connecting right now. Please try again."

// notesFailure is returned when notes generation fails.
const notesFailure = "Notes generation failed. Please try again."

const chatSystemPrompt = `You are an expert EAMCET Tutor.

IMPORTANT OUTPUT FORMAT RULES:
- Respond ONLY in plain text.
- Do NOT use **, *, #, or any markdown symbols.
- Do NOT bold, italicize, or format text.
- Use simple numbering and clear explanations.
- Format the response like a teacher explaining verbally to a student.
- Use 'x' or 'times' for multiplication; NEVER use asterisk (*).
- Use clear vertical spacing (double newlines) between different parts of your answer.`

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tutor answers student questions and generates topic notes.
type Tutor struct {
	provider llm.Provider
	logger   *zap.Logger

	// MaxTokens bounds each response.
	MaxTokens int
}

// New creates a Tutor with the given provider.
func New(provider llm.Provider, logger *zap.Logger) *Tutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tutor{provider: provider, logger: logger, MaxTokens: 4096}
}

// Chat answers one message given prior conversation history. The reply is
// sanitized plain text; on failure the student gets a polite apology rather
// than an error.
func (t *Tutor) Chat(ctx context.Context, history []Message, message string) string {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	messages := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:    chatSystemPrompt,
		Messages:  messages,
		Model:     llm.ModelSmall,
		MaxTokens: t.MaxTokens,
	})
	if err != nil {
		t.logger.Warn("chat failed", zap.Error(err))
		return chatApology
	}
	return Sanitize(resp.Text())
}

// TopicNotes generates plain-text study notes for one topic, scoped to the
// student's year.
func (t *Tutor) TopicNotes(ctx context.Context, topic, subject, year string) string {
	ctx = llm.WithPurpose(ctx, "topic-notes")

	resp, err := t.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildNotesPrompt(topic, subject, year)}},
		Model:     llm.ModelSmall,
		MaxTokens: t.MaxTokens,
	})
	if err != nil {
		t.logger.Warn("notes generation failed",
			zap.String("topic", topic),
			zap.Error(err))
		return notesFailure
	}
	return Sanitize(resp.Text())
}

// buildNotesPrompt constructs the study-notes prompt with per-year scoping
// rules.
func buildNotesPrompt(topic, subject, year string) string {
	var b strings.Builder

	b.WriteString("You are an expert TS EAMCET subject tutor.\n\n")
	b.WriteString("Topic Details:\n")
	fmt.Fprintf(&b, "- Subject: %s\n", subject)
	fmt.Fprintf(&b, "- Topic: %s\n", topic)
	fmt.Fprintf(&b, "- Year Level: %s\n", year)
	b.WriteString("- Exam: TS EAMCET\n")
	b.WriteString("- Student Level: Beginner to Intermediate\n\n")

	b.WriteString("Chapters in scope for this student:\n")
	b.WriteString(strings.Join(syllabus.ScopedChapters(syllabus.StreamMPC, syllabus.Year(year)), ", "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, `Task:
Generate clear study notes for the given topic.

Rules:
- Use only the official MPC syllabus relevant to the selected year (%s)
- If Year is "1st Year", strictly use 1st year content ONLY.
- If Year is "2nd Year", focus on 2nd year content but references to 1st year basics are allowed.
- If Year is "Dropper", focus heavily on high-weightage exam concepts and shortcuts.
- Explain concepts step by step
- Include:
  - Key concepts
  - Important formulas (if applicable)
  - Simple explanations
  - 2-3 solved examples
  - Common mistakes to avoid
- Keep language simple and exam-oriented
- Do NOT use markdown symbols (*, **, #)
- Do NOT include emojis
- Output in clean plain text only

Output Sections (PLAIN TEXT):
Topic Overview:
Key Concepts:
Important Formulas:
Worked Examples:
Exam Tips:`, year)

	return b.String()
}
