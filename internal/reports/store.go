package reports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"bijbelquiz-cli/internal/domain"
)

// OpenDB connects to the Postgres database holding error reports.
func OpenDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Filter narrows a report listing. Empty fields match everything.
type Filter struct {
	ErrorType  string
	UserID     string
	QuestionID string
	Limit      int
}

// Store reads error reports from Postgres.
type Store struct {
	db *bun.DB
}

func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the connection before the first query.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to report database: %w", err)
	}
	return nil
}

// List returns matching reports, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]ErrorReport, error) {
	var matches []ErrorReport
	q := applyFilter(s.db.NewSelect().Model(&matches), filter).OrderExpr("timestamp DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list error reports: %w", err)
	}
	return matches, nil
}

// Count ignores the filter limit so listings can show the full match size.
func (s *Store) Count(ctx context.Context, filter Filter) (int, error) {
	n, err := applyFilter(s.db.NewSelect().Model((*ErrorReport)(nil)), filter).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count error reports: %w", err)
	}
	return n, nil
}

// Get loads a single report by ID.
func (s *Store) Get(ctx context.Context, id string) (ErrorReport, error) {
	var report ErrorReport
	err := s.db.NewSelect().Model(&report).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrorReport{}, domain.ErrReportNotFound
	}
	if err != nil {
		return ErrorReport{}, fmt.Errorf("load error report %s: %w", id, err)
	}
	return report, nil
}

func applyFilter(q *bun.SelectQuery, filter Filter) *bun.SelectQuery {
	if filter.ErrorType != "" {
		q = q.Where("error_type = ?", filter.ErrorType)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.QuestionID != "" {
		q = q.Where("question_id = ?", filter.QuestionID)
	}
	return q
}
