// Copyright (c) 2026 Glowlab. All rights reserved.

package dashboard

import (
	stdctx "context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo          Repository
	reviewEnabled bool
	logger        *slog.Logger
}

func NewService(repo Repository, reviewEnabled bool, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		reviewEnabled: reviewEnabled,
		logger:        logger,
	}
}

// Overview gathers the three dashboard sections concurrently. The first
// failing query cancels the others; the page is all or nothing.
func (service *Service) Overview(context stdctx.Context) (*Overview, error) {
	overview := &Overview{}

	group, groupCtx := errgroup.WithContext(context)

	group.Go(func() error {
		counts, err := service.repo.Counts(groupCtx)
		if err != nil {
			return err
		}
		overview.Counts = counts
		return nil
	})

	group.Go(func() error {
		recent, err := service.repo.RecentProducts(groupCtx, recentLimit)
		if err != nil {
			return err
		}
		overview.RecentProducts = recent
		return nil
	})

	if service.reviewEnabled {
		group.Go(func() error {
			queue, err := service.repo.ReviewQueue(groupCtx)
			if err != nil {
				return err
			}
			overview.ReviewQueue = queue
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if overview.RecentProducts == nil {
		overview.RecentProducts = []RecentProduct{}
	}
	if overview.ReviewQueue.Brands == nil {
		overview.ReviewQueue.Brands = []ReviewItem{}
	}
	if overview.ReviewQueue.Ingredients == nil {
		overview.ReviewQueue.Ingredients = []ReviewItem{}
	}
	return overview, nil
}
