package term_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bijbelquiz-cli/internal/domain"
	"bijbelquiz-cli/internal/term"
)

func TestPromptChoiceRepromptsOnInvalidInput(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader("abc\n9\n2\n"), &out)

	choice, err := p.PromptChoice(context.Background(), 4)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if choice != 1 {
		t.Fatalf("expected 0-based index 1 for input '2', got %d", choice)
	}
	if got := strings.Count(out.String(), "Please enter a number between 1 and 4."); got != 2 {
		t.Fatalf("expected 2 re-prompts, got %d\noutput:\n%s", got, out.String())
	}
}

func TestPromptChoiceReturnsEOFWhenInputCloses(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader(""), &out)

	if _, err := p.PromptChoice(context.Background(), 4); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestPromptChoiceHonorsCancellation(t *testing.T) {
	// A pipe with no writer keeps the input open so only cancellation can
	// release the prompt.
	r, _ := io.Pipe()
	var out strings.Builder
	p := term.New(r, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.PromptChoice(ctx, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPromptContinue(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader("maybe\nn\n"), &out)

	cont, err := p.PromptContinue(context.Background())
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if cont {
		t.Fatal("expected 'n' to stop the game")
	}
	if !strings.Contains(out.String(), "Please enter y or n.") {
		t.Fatalf("expected a re-prompt for invalid input, got:\n%s", out.String())
	}

	p = term.New(strings.NewReader("YES\n"), &out)
	cont, err = p.PromptContinue(context.Background())
	if err != nil || !cont {
		t.Fatalf("expected 'YES' to continue, got cont=%v err=%v", cont, err)
	}
}

func TestShowQuestionRendersOptionsOneIndexed(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader(""), &out)

	p.ShowQuestion(domain.QuestionRecord{
		Prompt:     "Who built the ark?",
		Options:    []string{"Moses", "Noah"},
		Difficulty: 3,
		Reference:  "Gen 6",
		Categories: []string{"ot", "people"},
	}, domain.SessionSummary{Score: 20, Correct: 1, RoundsPlayed: 1, StarsEarned: 2}, 2)

	rendered := out.String()
	for _, want := range []string{
		"Question 2:",
		"Who built the ark?",
		"  1. Moses",
		"  2. Noah",
		"Difficulty: ***",
		"Reference: Gen 6",
		"Categories: ot, people",
		"Score: 20 | Correct: 1/1 | Stars: 2",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, rendered)
		}
	}
}

func TestShowOutcomeRevealsAnswerWhenWrong(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader(""), &out)

	q := domain.QuestionRecord{
		Options:      []string{"Moses", "Noah"},
		CorrectIndex: 1,
		Reference:    "Gen 6",
	}
	p.ShowOutcome(domain.RoundOutcome{ChoiceIndex: 0, Correct: false}, q)

	rendered := out.String()
	for _, want := range []string{"INCORRECT!", "Your answer: Moses", "Correct answer: Noah", "Reference: Gen 6"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in output:\n%s", want, rendered)
		}
	}
}

func TestShowSummaryFormatsAccuracy(t *testing.T) {
	var out strings.Builder
	p := term.New(strings.NewReader(""), &out)

	p.ShowSummary(domain.SessionSummary{RoundsPlayed: 3, Correct: 2, Score: 30, StarsEarned: 3})
	if !strings.Contains(out.String(), "66.7%") {
		t.Fatalf("expected accuracy to one decimal, got:\n%s", out.String())
	}

	out.Reset()
	p.ShowSummary(domain.SessionSummary{})
	if !strings.Contains(out.String(), "0.0%") {
		t.Fatalf("expected 0.0%% for an empty session, got:\n%s", out.String())
	}
}
