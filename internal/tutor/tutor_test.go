package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ravitej/prepmate/internal/llm"
)

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestChat(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("The derivative of x squared is 2x."))
	tut := New(mock, nil)

	reply := tut.Chat(context.Background(), nil, "What is the derivative of x^2?")
	if reply != "The derivative of x squared is 2x." {
		t.Errorf("unexpected reply: %q", reply)
	}

	call := mock.LastCall()
	if !strings.Contains(call.System, "Respond ONLY in plain text") {
		t.Error("chat system prompt missing plain-text rules")
	}
	if call.Model != llm.ModelSmall {
		t.Errorf("model = %q, want %q", call.Model, llm.ModelSmall)
	}
	if call.Schema != nil {
		t.Error("chat must not request JSON output")
	}
}

func TestChat_HistoryThreaded(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Yes, exactly."))
	tut := New(mock, nil)

	history := []Message{
		{Role: "user", Content: "Explain projectile motion"},
		{Role: "assistant", Content: "A projectile follows a parabolic path..."},
	}
	tut.Chat(context.Background(), history, "So range depends on angle?")

	call := mock.LastCall()
	if len(call.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(call.Messages))
	}
	if call.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("history role = %q, want assistant", call.Messages[1].Role)
	}
	if call.Messages[2].Content != "So range depends on angle?" {
		t.Errorf("last message = %q", call.Messages[2].Content)
	}
}

func TestChat_SanitizesReply(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("**Newton's** second law: F = m * a"))
	tut := New(mock, nil)

	reply := tut.Chat(context.Background(), nil, "State Newton's second law")
	if strings.Contains(reply, "*") {
		t.Errorf("reply not sanitized: %q", reply)
	}
}

func TestChat_ApologyOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	tut := New(mock, nil)

	reply := tut.Chat(context.Background(), nil, "hello")
	if reply != chatApology {
		t.Errorf("reply = %q, want canned apology", reply)
	}
}

func TestTopicNotes(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Topic Overview:\nA circle is the locus of points equidistant from a centre."))
	tut := New(mock, nil)

	notes := tut.TopicNotes(context.Background(), "Circle", "Mathematics", "2nd Year")
	if !strings.Contains(notes, "locus of points") {
		t.Errorf("unexpected notes: %q", notes)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "- Topic: Circle") || !strings.Contains(prompt, "- Subject: Mathematics") {
		t.Error("prompt missing topic details")
	}
	if !strings.Contains(prompt, `If Year is "1st Year", strictly use 1st year content ONLY.`) {
		t.Error("prompt missing year scoping rules")
	}
	if !strings.Contains(prompt, "Definite Integrals") {
		t.Error("prompt missing 2nd-year in-scope chapters")
	}
}

func TestTopicNotes_FirstYearChapterScope(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Functions map inputs to outputs."))
	tut := New(mock, nil)

	tut.TopicNotes(context.Background(), "Functions", "Mathematics", "1st Year")

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "Mathematical Induction") {
		t.Error("prompt missing 1st-year in-scope chapters")
	}
	if strings.Contains(prompt, "Definite Integrals") {
		t.Error("2nd-year chapter leaked into a 1st-year prompt")
	}
}

func TestTopicNotes_FailureString(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	)
	tut := New(mock, nil)

	notes := tut.TopicNotes(context.Background(), "Waves", "Physics", "2nd Year")
	if notes != notesFailure {
		t.Errorf("notes = %q, want fixed failure string", notes)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"asterisks", "**bold** and *italic*", "bold and italic"},
		{"symbols", "# Heading ~strike~ `code` <tag> |pipe| • dot", "Heading strike code tag pipe  dot"},
		{"bullets stripped", "- first point\n+ second point", "first point\nsecond point"},
		{"numbered lists preserved", "1. first\n2. second", "1. first\n2. second"},
		{"indented bullet", "  - indented", "indented"},
		{"trimmed", "  hello  ", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"**bold** with\n- bullets\n1. and numbers",
		"plain text already",
		"# mixed ~ everything ~ here •",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
