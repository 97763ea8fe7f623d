package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

type TemplatePostgres struct {
	db *pgxpool.Pool
}

func NewTemplatePostgres(db *pgxpool.Pool) *TemplatePostgres {
	return &TemplatePostgres{db: db}
}

func (r *TemplatePostgres) ListTemplates(ctx context.Context) ([]models.TemplateMeta, error) {
	const query = `
        SELECT id, name, display_name, category, icon, active, created_at, updated_at
        FROM templates
        WHERE active = true
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.TemplateMeta
	for rows.Next() {
		var t models.TemplateMeta
		if err := rows.Scan(&t.ID, &t.Name, &t.DisplayName, &t.Category, &t.Icon, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplatePostgres) TemplateByName(ctx context.Context, name string) (*models.TemplateMeta, error) {
	const query = `
        SELECT id, name, display_name, category, icon, active, created_at, updated_at
        FROM templates
        WHERE name = $1
    `
	t := &models.TemplateMeta{}
	row := r.db.QueryRow(ctx, query, name)
	err := row.Scan(&t.ID, &t.Name, &t.DisplayName, &t.Category, &t.Icon, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}
