// Copyright (c) 2026 Glowlab. All rights reserved.

package dashboard_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/dashboard"
)

type memRepo struct {
	counts dashboard.Counts
	queue  dashboard.ReviewQueue
	recent []dashboard.RecentProduct

	countsErr error
	queueErr  error

	queueCalls int
}

func (m *memRepo) Counts(_ context.Context) (dashboard.Counts, error) {
	return m.counts, m.countsErr
}

func (m *memRepo) ReviewQueue(_ context.Context) (dashboard.ReviewQueue, error) {
	m.queueCalls++
	return m.queue, m.queueErr
}

func (m *memRepo) RecentProducts(_ context.Context, limit int) ([]dashboard.RecentProduct, error) {
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func TestService_Overview(t *testing.T) {
	repo := &memRepo{
		counts: dashboard.Counts{Products: 1200, Brands: 80, Ingredients: 600, Categories: 40, Tags: 25},
		queue: dashboard.ReviewQueue{
			Products:    12,
			Brands:      []dashboard.ReviewItem{{ID: 4, Name: "AQUA"}},
			Ingredients: []dashboard.ReviewItem{{ID: 31, Name: "Niacinamide"}},
		},
		recent: []dashboard.RecentProduct{
			{ID: 9, Name: "Krem SPF 50", CreatedAt: time.Now()},
		},
	}
	service := dashboard.NewService(repo, true, slog.New(slog.DiscardHandler))

	overview, err := service.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1200, overview.Counts.Products)
	assert.Equal(t, 12, overview.ReviewQueue.Products)
	require.Len(t, overview.ReviewQueue.Brands, 1)
	assert.Equal(t, "AQUA", overview.ReviewQueue.Brands[0].Name)
	require.Len(t, overview.RecentProducts, 1)
	assert.Equal(t, "Krem SPF 50", overview.RecentProducts[0].Name)
}

/*
TestService_Overview_ReviewDisabled verifies that the queue query is skipped
entirely when the workflow is off and the section renders as zeros.
*/
func TestService_Overview_ReviewDisabled(t *testing.T) {
	repo := &memRepo{
		queue: dashboard.ReviewQueue{Products: 12},
	}
	service := dashboard.NewService(repo, false, slog.New(slog.DiscardHandler))

	overview, err := service.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, repo.queueCalls)
	assert.Equal(t, 0, overview.ReviewQueue.Products)
	assert.Empty(t, overview.ReviewQueue.Brands)
	assert.NotNil(t, overview.ReviewQueue.Brands, "empty queue must marshal as [], not null")
	assert.NotNil(t, overview.RecentProducts, "empty list must marshal as [], not null")
}

func TestService_Overview_PropagatesFailure(t *testing.T) {
	repo := &memRepo{countsErr: errors.New("connection reset")}
	service := dashboard.NewService(repo, true, slog.New(slog.DiscardHandler))

	_, err := service.Overview(context.Background())
	require.Error(t, err)
}
