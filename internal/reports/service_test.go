package reports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"bijbelquiz-cli/internal/reports"
)

type fakeRepo struct {
	reports []reports.ErrorReport
	total   int
	listErr error
	getErr  error

	lastFilter reports.Filter
}

func (f *fakeRepo) List(ctx context.Context, filter reports.Filter) ([]reports.ErrorReport, error) {
	f.lastFilter = filter
	return f.reports, f.listErr
}

func (f *fakeRepo) Count(ctx context.Context, filter reports.Filter) (int, error) {
	return f.total, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (reports.ErrorReport, error) {
	if f.getErr != nil {
		return reports.ErrorReport{}, f.getErr
	}
	return reports.ErrorReport{ID: id}, nil
}

func TestListCombinesPageAndTotal(t *testing.T) {
	repo := &fakeRepo{
		reports: []reports.ErrorReport{{ID: "1"}, {ID: "2"}},
		total:   7,
	}
	svc := reports.NewService(repo, zerolog.Nop())

	filter := reports.Filter{ErrorType: "AppErrorType.network", Limit: 2}
	listing, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing.Reports) != 2 || listing.Total != 7 {
		t.Fatalf("expected 2 of 7, got %d of %d", len(listing.Reports), listing.Total)
	}
	if repo.lastFilter != filter {
		t.Fatalf("filter not passed through: %+v", repo.lastFilter)
	}
}

func TestListPropagatesErrors(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection reset")}
	svc := reports.NewService(repo, zerolog.Nop())

	if _, err := svc.List(context.Background(), reports.Filter{}); err == nil {
		t.Fatal("expected the store error to propagate")
	}
}

func TestSummaryPrefersUserMessageAndTruncates(t *testing.T) {
	r := reports.ErrorReport{
		ErrorMessage: "stack overflow in question loader",
		UserMessage:  "Something went wrong while loading your quiz, please try again later",
	}
	got := r.Summary(20)
	if got != "Something went wrong..." {
		t.Fatalf("unexpected summary: %q", got)
	}

	r.UserMessage = ""
	if got := r.Summary(0); got != "stack overflow in question loader" {
		t.Fatalf("expected fallback to the technical message, got %q", got)
	}
}
