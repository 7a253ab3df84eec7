package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bijbelquiz-cli/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client talks to the BijbelQuiz API. Every call is a single synchronous
// attempt; there is no retry policy and no caching.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// QuestionQuery filters the questions endpoint.
type QuestionQuery struct {
	Category   string
	Limit      int
	Difficulty int
}

func (q QuestionQuery) values() url.Values {
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Difficulty > 0 {
		params.Set("difficulty", strconv.Itoa(q.Difficulty))
	}
	return params
}

// TransactionQuery filters the star transaction history.
type TransactionQuery struct {
	Limit    int
	Type     string
	LessonID string
}

func (q TransactionQuery) values() url.Values {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.LessonID != "" {
		params.Set("lessonId", q.LessonID)
	}
	return params
}

// Health checks API health.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "health", nil)
}

// Progress returns the user's progress document.
func (c *Client) Progress(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "progress", nil)
}

// Stats returns game statistics.
func (c *Client) Stats(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "stats", nil)
}

// Settings returns app settings.
func (c *Client) Settings(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "settings", nil)
}

// QuestionsJSON returns the raw question batch for display.
func (c *Client) QuestionsJSON(ctx context.Context, query QuestionQuery) (json.RawMessage, error) {
	return c.get(ctx, "questions", query.values())
}

// FetchQuestions retrieves a question batch and validates it for play.
// An empty batch yields domain.ErrNoQuestions.
func (c *Client) FetchQuestions(ctx context.Context, query QuestionQuery) ([]domain.QuestionRecord, error) {
	raw, err := c.get(ctx, "questions", query.values())
	if err != nil {
		return nil, err
	}
	var payload struct {
		Questions []domain.QuestionRecord `json:"questions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &domain.DecodeError{Endpoint: "questions", Err: err}
	}
	if len(payload.Questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	for _, q := range payload.Questions {
		if err := q.Validate(); err != nil {
			return nil, &domain.DecodeError{Endpoint: "questions", Err: err}
		}
	}
	return payload.Questions, nil
}

// StarBalance returns the current star balance.
func (c *Client) StarBalance(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "stars/balance", nil)
}

// StarStats returns aggregate star statistics.
func (c *Client) StarStats(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "stars/stats", nil)
}

// StarTransactions returns the transaction history.
func (c *Client) StarTransactions(ctx context.Context, query TransactionQuery) (json.RawMessage, error) {
	return c.get(ctx, "stars/transactions", query.values())
}

// AddStars credits the star ledger.
func (c *Client) AddStars(ctx context.Context, sub domain.RewardSubmission) (domain.StarUpdate, error) {
	return c.starMutation(ctx, "stars/add", sub)
}

// SpendStars debits the star ledger.
func (c *Client) SpendStars(ctx context.Context, sub domain.RewardSubmission) (domain.StarUpdate, error) {
	return c.starMutation(ctx, "stars/spend", sub)
}

func (c *Client) starMutation(ctx context.Context, endpoint string, sub domain.RewardSubmission) (domain.StarUpdate, error) {
	raw, err := c.post(ctx, endpoint, sub)
	if err != nil {
		return domain.StarUpdate{}, err
	}
	var update domain.StarUpdate
	if err := json.Unmarshal(raw, &update); err != nil {
		return domain.StarUpdate{}, &domain.DecodeError{Endpoint: endpoint, Err: err}
	}
	return update, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	return c.do(req, endpoint)
}

func (c *Client) post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	return c.do(req, endpoint)
}

func (c *Client) do(req *http.Request, endpoint string) (json.RawMessage, error) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &domain.APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		var detail struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &detail) == nil {
			apiErr.Code = detail.Error
			apiErr.Message = detail.Message
		}
		return nil, apiErr
	}
	return json.RawMessage(body), nil
}
