package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is a question level from 1 to 5. The API has served it both as a
// JSON number and as a string, so it decodes from either form.
type Difficulty int

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("difficulty %q is not a number", s)
	}
	*d = Difficulty(n)
	return nil
}

// QuestionRecord is one question as served by the API. Options arrive already
// shuffled; CorrectIndex points into Options.
type QuestionRecord struct {
	Prompt           string     `json:"question"`
	CorrectAnswer    string     `json:"correctAnswer"`
	IncorrectAnswers []string   `json:"incorrectAnswers"`
	Difficulty       Difficulty `json:"difficulty"`
	Type             string     `json:"type"`
	Categories       []string   `json:"categories"`
	Reference        string     `json:"biblicalReference"`
	Options          []string   `json:"allOptions"`
	CorrectIndex     int        `json:"correctAnswerIndex"`
}

// Validate checks the option invariants the game relies on.
func (q QuestionRecord) Validate() error {
	if len(q.Options) == 0 {
		return fmt.Errorf("question %q has no options", q.Prompt)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range", q.Prompt, q.CorrectIndex)
	}
	if q.CorrectAnswer != "" && q.Options[q.CorrectIndex] != q.CorrectAnswer {
		return fmt.Errorf("question %q: option %d does not match the correct answer", q.Prompt, q.CorrectIndex)
	}
	return nil
}

// RoundOutcome is the result of answering a single question.
type RoundOutcome struct {
	ChoiceIndex int
	Correct     bool
	Points      int
	Stars       int
}

// SessionSummary holds the running totals of a game session. It is also the
// final read-only summary once the session ends.
type SessionSummary struct {
	RoundsPlayed int
	Correct      int
	Score        int
	StarsEarned  int
}

// Accuracy is the percentage of correct answers, 0 when nothing was played.
func (s SessionSummary) Accuracy() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return 100 * float64(s.Correct) / float64(s.RoundsPlayed)
}

// RewardSubmission is a credit or debit sent to the star ledger.
type RewardSubmission struct {
	Amount   int    `json:"amount"`
	Reason   string `json:"reason"`
	LessonID string `json:"lessonId,omitempty"`
}

// StarUpdate is the ledger's response to an add or spend.
type StarUpdate struct {
	Success bool   `json:"success"`
	Balance int    `json:"balance"`
	Message string `json:"message,omitempty"`
}
