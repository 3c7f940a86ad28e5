// Copyright (c) 2026 Glowlab. All rights reserved.

package bug

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowlab/glowlab/internal/platform/database/schema"
	"github.com/glowlab/glowlab/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListReports(context context.Context, f Filter, limit, offset int) ([]*Report, int, error) {
	t := schema.BugReport
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		t.ID, t.ReporterID, t.Title, t.Description, t.PageURL,
		t.Status, t.CreatedAt, t.UpdatedAt,
		t.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Status != "" {
		clause := fmt.Sprintf(" AND %s = $", t.Status) + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Status)
		countArgs = append(countArgs, f.Status)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", t.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_bug_reports")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_bug_reports")
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		report := &Report{}
		if err := rows.Scan(
			&report.ID, &report.ReporterID, &report.Title, &report.Description,
			&report.PageURL, &report.Status, &report.CreatedAt, &report.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_bug_report")
		}
		reports = append(reports, report)
	}

	return reports, total, nil
}

func (repository *PostgresRepository) GetReport(context context.Context, id int) (*Report, error) {
	t := schema.BugReport
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.ID, t.ReporterID, t.Title, t.Description, t.PageURL,
		t.Status, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID,
	)

	report := &Report{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&report.ID, &report.ReporterID, &report.Title, &report.Description,
		&report.PageURL, &report.Status, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_bug_report")
	}
	return report, nil
}

func (repository *PostgresRepository) CreateReport(context context.Context, report *Report) error {
	t := schema.BugReport
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.ReporterID, t.Title, t.Description, t.PageURL, t.Status,
		t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		report.ReporterID, report.Title, report.Description, report.PageURL, report.Status,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	return dberr.Wrap(err, "create_bug_report")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int, status string) error {
	t := schema.BugReport
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Status, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_bug_report_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteReport(context context.Context, id int) error {
	t := schema.BugReport
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_bug_report")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
