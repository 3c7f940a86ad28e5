// Copyright (c) 2026 Glowlab. All rights reserved.

package bug_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/support/bug"
)

type memRepo struct {
	reports map[int]*bug.Report
	nextID  int
}

func newMemRepo() *memRepo {
	return &memRepo{reports: map[int]*bug.Report{}, nextID: 1}
}

func (m *memRepo) ListReports(_ context.Context, f bug.Filter, _, _ int) ([]*bug.Report, int, error) {
	out := []*bug.Report{}
	for _, r := range m.reports {
		if f.Status == "" || r.Status == f.Status {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func (m *memRepo) GetReport(_ context.Context, id int) (*bug.Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, apperr.NotFound("Bug report")
	}
	return r, nil
}

func (m *memRepo) CreateReport(_ context.Context, r *bug.Report) error {
	r.ID = m.nextID
	m.reports[r.ID] = r
	m.nextID++
	return nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id int, status string) error {
	r, ok := m.reports[id]
	if !ok {
		return apperr.NotFound("Bug report")
	}
	r.Status = status
	return nil
}

func (m *memRepo) DeleteReport(_ context.Context, id int) error {
	if _, ok := m.reports[id]; !ok {
		return apperr.NotFound("Bug report")
	}
	delete(m.reports, id)
	return nil
}

func newService() (*bug.Service, *memRepo) {
	repo := newMemRepo()
	return bug.NewService(repo, slog.New(slog.DiscardHandler)), repo
}

func TestService_CreateReport(t *testing.T) {
	service, repo := newService()
	reporter := uuid.Must(uuid.NewV7())

	report, err := service.CreateReport(context.Background(), reporter.String(), &bug.CreateInput{
		Title: "  Miniatura produktu nie wczytuje się  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Miniatura produktu nie wczytuje się", report.Title)
	assert.Equal(t, bug.StatusOpen, report.Status)
	assert.Equal(t, reporter, report.ReporterID)
	assert.Len(t, repo.reports, 1)
}

func TestService_CreateReport_Validation(t *testing.T) {
	service, _ := newService()
	reporter := uuid.Must(uuid.NewV7()).String()

	t.Run("missing_title", func(t *testing.T) {
		_, err := service.CreateReport(context.Background(), reporter, &bug.CreateInput{Title: "   "})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("malformed_page_url", func(t *testing.T) {
		pageURL := "not a url"
		_, err := service.CreateReport(context.Background(), reporter, &bug.CreateInput{
			Title:   "Błąd",
			PageURL: &pageURL,
		})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("garbage_reporter_id", func(t *testing.T) {
		_, err := service.CreateReport(context.Background(), "not-a-uuid", &bug.CreateInput{Title: "Błąd"})

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	service, repo := newService()
	reporter := uuid.Must(uuid.NewV7()).String()

	report, err := service.CreateReport(context.Background(), reporter, &bug.CreateInput{Title: "Błąd"})
	require.NoError(t, err)

	require.NoError(t, service.UpdateStatus(context.Background(), report.ID, bug.StatusClosed))
	assert.Equal(t, bug.StatusClosed, repo.reports[report.ID].Status)

	err = service.UpdateStatus(context.Background(), report.ID, "resolved")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestService_ListReports_StatusFilter(t *testing.T) {
	service, _ := newService()
	reporter := uuid.Must(uuid.NewV7()).String()

	open, err := service.CreateReport(context.Background(), reporter, &bug.CreateInput{Title: "Otwarte"})
	require.NoError(t, err)
	closed, err := service.CreateReport(context.Background(), reporter, &bug.CreateInput{Title: "Zamknięte"})
	require.NoError(t, err)
	require.NoError(t, service.UpdateStatus(context.Background(), closed.ID, bug.StatusClosed))

	reports, total, err := service.ListReports(context.Background(), bug.Filter{Status: bug.StatusOpen}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, reports, 1)
	assert.Equal(t, open.ID, reports[0].ID)

	_, _, err = service.ListReports(context.Background(), bug.Filter{Status: "wontfix"}, 20, 0)
	require.Error(t, err)
}
