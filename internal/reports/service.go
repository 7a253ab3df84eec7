package reports

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Repository abstracts how reports are read (Postgres in production).
type Repository interface {
	List(ctx context.Context, filter Filter) ([]ErrorReport, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Get(ctx context.Context, id string) (ErrorReport, error)
}

// Listing pairs a page of reports with the total match count.
type Listing struct {
	Reports []ErrorReport
	Total   int
}

// Service is the admin-facing view over stored error reports.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List fetches the filtered page and the total match count in parallel.
func (s *Service) List(ctx context.Context, filter Filter) (Listing, error) {
	var listing Listing
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := s.repo.List(ctx, filter)
		listing.Reports = matches
		return err
	})
	g.Go(func() error {
		total, err := s.repo.Count(ctx, filter)
		listing.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return Listing{}, err
	}
	s.log.Debug().Int("matched", listing.Total).Int("returned", len(listing.Reports)).Msg("loaded error reports")
	return listing, nil
}

// Get loads one report in full.
func (s *Service) Get(ctx context.Context, id string) (ErrorReport, error) {
	return s.repo.Get(ctx, id)
}
