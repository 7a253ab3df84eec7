package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bijbelquiz-cli/internal/domain"
)

const ruleWidth = 60

// Presenter renders the quiz to a terminal and reads selections from an input
// stream. Input lines are pumped through a channel so a pending prompt can be
// abandoned when the context is cancelled.
type Presenter struct {
	out   io.Writer
	lines chan string
}

func New(in io.Reader, out io.Writer) *Presenter {
	p := &Presenter{out: out, lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
		close(p.lines)
	}()
	return p
}

func (p *Presenter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (p *Presenter) banner(title string) {
	bar := strings.Repeat("=", ruleWidth)
	pad := (ruleWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(p.out, bar)
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(p.out, bar)
}

func (p *Presenter) ShowIntro(total int) {
	fmt.Fprintf(p.out, "Loaded %d questions. Press Ctrl+C at any time to quit.\n", total)
}

func (p *Presenter) ShowQuestion(q domain.QuestionRecord, state domain.SessionSummary, number int) {
	fmt.Fprintln(p.out)
	p.banner("BIJBEL QUIZ")
	fmt.Fprintf(p.out, "Score: %d | Correct: %d/%d | Stars: %d\n",
		state.Score, state.Correct, state.RoundsPlayed, state.StarsEarned)
	fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))

	fmt.Fprintf(p.out, "\nQuestion %d:\n%s\n", number, q.Prompt)
	if q.Reference != "" {
		fmt.Fprintf(p.out, "Reference: %s\n", q.Reference)
	}
	if len(q.Categories) > 0 {
		fmt.Fprintf(p.out, "Categories: %s\n", strings.Join(q.Categories, ", "))
	}
	fmt.Fprintf(p.out, "Difficulty: %s\n", strings.Repeat("*", int(q.Difficulty)))

	fmt.Fprintln(p.out, "\nChoices:")
	for i, option := range q.Options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}
}

// PromptChoice keeps asking until the input is a number inside
// [1, optionCount]; the returned index is 0-based.
func (p *Presenter) PromptChoice(ctx context.Context, optionCount int) (int, error) {
	for {
		fmt.Fprintf(p.out, "\nEnter your choice (1-%d): ", optionCount)
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > optionCount {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", optionCount)
			continue
		}
		return n - 1, nil
	}
}

func (p *Presenter) ShowOutcome(outcome domain.RoundOutcome, q domain.QuestionRecord) {
	fmt.Fprintln(p.out)
	if outcome.Correct {
		fmt.Fprintln(p.out, "CORRECT!")
		fmt.Fprintf(p.out, "Your answer: %s\n", q.Options[outcome.ChoiceIndex])
		fmt.Fprintf(p.out, "You earned %d points and %d stars!\n", outcome.Points, outcome.Stars)
		return
	}
	fmt.Fprintln(p.out, "INCORRECT!")
	fmt.Fprintf(p.out, "Your answer: %s\n", q.Options[outcome.ChoiceIndex])
	fmt.Fprintf(p.out, "Correct answer: %s\n", q.Options[q.CorrectIndex])
	if q.Reference != "" {
		fmt.Fprintf(p.out, "Reference: %s\n", q.Reference)
	}
}

func (p *Presenter) PromptContinue(ctx context.Context) (bool, error) {
	for {
		fmt.Fprint(p.out, "\nContinue playing? (y/n): ")
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter y or n.")
	}
}

func (p *Presenter) ShowSummary(summary domain.SessionSummary) {
	fmt.Fprintln(p.out)
	p.banner("GAME COMPLETE")
	fmt.Fprintln(p.out, "Final results:")
	fmt.Fprintf(p.out, "  Questions answered: %d\n", summary.RoundsPlayed)
	fmt.Fprintf(p.out, "  Correct answers:    %d\n", summary.Correct)
	fmt.Fprintf(p.out, "  Accuracy:           %.1f%%\n", summary.Accuracy())
	fmt.Fprintf(p.out, "  Total score:        %d\n", summary.Score)
	fmt.Fprintf(p.out, "  Stars earned:       %d\n", summary.StarsEarned)
}

func (p *Presenter) ShowNewBalance(balance int) {
	fmt.Fprintf(p.out, "  New star balance:   %d\n", balance)
}

func (p *Presenter) ShowRewardWarning(err error) {
	fmt.Fprintf(p.out, "  Warning: could not award stars: %v\n", err)
}
