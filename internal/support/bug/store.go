// Copyright (c) 2026 Glowlab. All rights reserved.

package bug

import "context"

type Repository interface {
	ListReports(context context.Context, f Filter, limit, offset int) ([]*Report, int, error)
	GetReport(context context.Context, id int) (*Report, error)
	CreateReport(context context.Context, report *Report) error
	UpdateStatus(context context.Context, id int, status string) error
	DeleteReport(context context.Context, id int) error
}
