package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/pkg/helpers"
)

// ErrDataUnavailable is the only error the aggregator returns. It wraps the
// storage failure that caused it.
var ErrDataUnavailable = errors.New("dashboard data unavailable")

// Service computes the admin dashboard report. It holds no mutable state and
// is safe for concurrent use.
type Service struct {
	Source repo.DashboardSource
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewService(src repo.DashboardSource, logger *logrus.Logger) *Service {
	return &Service{Source: src, Logger: logger, Now: time.Now}
}

// ComputeDashboardReport reads a snapshot from storage and aggregates it.
// Storage reads run concurrently; the first failure cancels the rest and is
// returned wrapped in ErrDataUnavailable. There is no retry.
func (s *Service) ComputeDashboardReport(ctx context.Context) (*entity.DashboardReport, error) {
	now := s.now()
	snap, err := s.load(ctx)
	if err != nil {
		helpers.DashboardFailures.Add(1)
		if s.Logger != nil {
			s.Logger.WithError(err).Error("dashboard snapshot load failed")
		}
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	r := Compute(snap, now)
	helpers.DashboardReports.Add(1)
	return &r, nil
}

func (s *Service) load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Source.CountUsersByRole(gctx, entity.RoleSeller)
		snap.TotalSellers = n
		return wrapRead("count sellers", err)
	})
	g.Go(func() error {
		n, err := s.Source.CountUsersByRole(gctx, entity.RoleBuyer)
		snap.TotalBuyers = n
		return wrapRead("count buyers", err)
	})
	g.Go(func() error {
		n, err := s.Source.CountArtworks(gctx)
		snap.TotalArtworks = n
		return wrapRead("count artworks", err)
	})
	g.Go(func() error {
		facts, err := s.Source.ListPaidOrderFacts(gctx)
		snap.PaidOrders = facts
		return wrapRead("list paid orders", err)
	})
	g.Go(func() error {
		cats, err := s.Source.ListArtworkCategories(gctx)
		snap.Categories = cats
		return wrapRead("list artwork categories", err)
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func wrapRead(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
