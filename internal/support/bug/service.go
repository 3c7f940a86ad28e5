// Copyright (c) 2026 Glowlab. All rights reserved.

package bug

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/glowlab/glowlab/internal/platform/apperr"
	"github.com/glowlab/glowlab/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListReports(context context.Context, f Filter, limit, offset int) ([]*Report, int, error) {
	if f.Status != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldStatus, f.Status, StatusOpen, StatusClosed)
		if err := validator.Err(); err != nil {
			return nil, 0, err
		}
	}

	return service.repo.ListReports(context, f, limit, offset)
}

func (service *Service) GetReport(context context.Context, id int) (*Report, error) {
	return service.repo.GetReport(context, id)
}

// CreateReport files a report on behalf of the authenticated reporter.
// New reports always open as [StatusOpen].
func (service *Service) CreateReport(context context.Context, reporterID string, input *CreateInput) (*Report, error) {
	input.Title = strings.TrimSpace(input.Title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	if input.PageURL != nil && *input.PageURL != "" {
		validator.URL(FieldPageURL, *input.PageURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	reporter, err := uuid.Parse(reporterID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid access token subject")
	}

	report := &Report{
		ReporterID:  reporter,
		Title:       input.Title,
		Description: input.Description,
		PageURL:     input.PageURL,
		Status:      StatusOpen,
	}
	if err := service.repo.CreateReport(context, report); err != nil {
		return nil, err
	}

	service.logger.Info("bug_report_filed",
		slog.Int("report_id", report.ID),
		slog.String("reporter_id", reporterID),
	)
	return report, nil
}

func (service *Service) UpdateStatus(context context.Context, id int, status string) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, StatusOpen, StatusClosed)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("bug_report_status_changed",
		slog.Int("report_id", id),
		slog.String("status", status),
	)
	return nil
}

func (service *Service) DeleteReport(context context.Context, id int) error {
	return service.repo.DeleteReport(context, id)
}
