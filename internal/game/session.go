package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bijbelquiz-cli/internal/domain"
)

// Presenter is the user-facing surface a session drives. Implementations
// render to a terminal, a widget set, or anything else that can show a
// question and collect a validated choice.
type Presenter interface {
	ShowIntro(total int)
	// ShowQuestion renders the prompt, metadata and options for round `number`
	// (1-based), together with the running totals.
	ShowQuestion(q domain.QuestionRecord, state domain.SessionSummary, number int)
	// PromptChoice blocks for a validated 0-based option index. It returns an
	// error only when the input surface is cancelled (interrupt, closed input).
	PromptChoice(ctx context.Context, optionCount int) (int, error)
	ShowOutcome(outcome domain.RoundOutcome, q domain.QuestionRecord)
	// PromptContinue asks whether to keep playing after a wrong answer.
	PromptContinue(ctx context.Context) (bool, error)
	ShowSummary(summary domain.SessionSummary)
	ShowNewBalance(balance int)
	ShowRewardWarning(err error)
}

// RewardLedger is the slice of the gateway the session needs at the end.
type RewardLedger interface {
	AddStars(ctx context.Context, sub domain.RewardSubmission) (domain.StarUpdate, error)
}

// Controller drives one interactive quiz session over a fetched question
// batch: per-round scoring, early stop, and the end-of-session reward credit.
type Controller struct {
	presenter Presenter
	ledger    RewardLedger
	pause     time.Duration
	sleep     func(time.Duration)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPause sets the delay between a round outcome and the next question.
func WithPause(d time.Duration) Option {
	return func(c *Controller) { c.pause = d }
}

// WithSleep replaces the sleep function; tests pass a no-op.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) { c.sleep = fn }
}

func New(presenter Presenter, ledger RewardLedger, opts ...Option) *Controller {
	c := &Controller{
		presenter: presenter,
		ledger:    ledger,
		pause:     2 * time.Second,
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays each question in order and reconciles earned stars with the
// ledger. Every way out of the loop (end of batch, declining to continue,
// cancellation while waiting for input) goes through the same summary and
// reward path, so stars already earned are never lost.
func (c *Controller) Run(ctx context.Context, questions []domain.QuestionRecord) (domain.SessionSummary, error) {
	if len(questions) == 0 {
		return domain.SessionSummary{}, domain.ErrNoQuestions
	}

	var state domain.SessionSummary
	c.presenter.ShowIntro(len(questions))

	for i, q := range questions {
		c.presenter.ShowQuestion(q, state, i+1)

		choice, err := c.presenter.PromptChoice(ctx, len(q.Options))
		if err != nil {
			break
		}

		outcome := scoreRound(q, choice)
		state.RoundsPlayed++
		if outcome.Correct {
			state.Correct++
			state.Score += outcome.Points
			state.StarsEarned += outcome.Stars
		}
		c.presenter.ShowOutcome(outcome, q)

		if i == len(questions)-1 {
			break
		}
		if !outcome.Correct {
			cont, err := c.presenter.PromptContinue(ctx)
			if err != nil || !cont {
				break
			}
		}
		if c.pause > 0 {
			c.sleep(c.pause)
		}
	}

	c.presenter.ShowSummary(state)
	c.submitReward(ctx, state)
	return state, nil
}

func scoreRound(q domain.QuestionRecord, choice int) domain.RoundOutcome {
	outcome := domain.RoundOutcome{ChoiceIndex: choice, Correct: choice == q.CorrectIndex}
	if outcome.Correct {
		level := int(q.Difficulty)
		outcome.Points = level * 10
		outcome.Stars = level
	}
	return outcome
}

// submitReward is best-effort: a failed credit degrades to a warning and never
// touches the already-rendered summary. Zero-star sessions submit nothing.
func (c *Controller) submitReward(ctx context.Context, state domain.SessionSummary) {
	if state.StarsEarned == 0 {
		return
	}

	// The session context may already be cancelled by the interrupt that ended
	// the game; the credit for stars earned so far still has to go out.
	ctx = context.WithoutCancel(ctx)

	update, err := c.ledger.AddStars(ctx, domain.RewardSubmission{
		Amount: state.StarsEarned,
		Reason: fmt.Sprintf("Quiz game completed - %d/%d correct", state.Correct, state.RoundsPlayed),
	})
	if err != nil {
		c.presenter.ShowRewardWarning(err)
		return
	}
	if !update.Success {
		c.presenter.ShowRewardWarning(errors.New("ledger rejected the credit"))
		return
	}
	c.presenter.ShowNewBalance(update.Balance)
}
