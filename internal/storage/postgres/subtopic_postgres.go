package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

type SubtopicPostgres struct {
	db *pgxpool.Pool
}

func NewSubtopicPostgres(db *pgxpool.Pool) *SubtopicPostgres {
	return &SubtopicPostgres{db: db}
}

func (r *SubtopicPostgres) CreateSubtopic(ctx context.Context, sub *models.Subtopic) (uuid.UUID, error) {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	query := `
		INSERT INTO subtopics (id, topic_id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, sub.ID, sub.TopicID, sub.Name, sub.Active, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return uuid.Nil, err
	}
	return sub.ID, nil
}

func (r *SubtopicPostgres) SubtopicByID(ctx context.Context, id uuid.UUID) (*models.Subtopic, error) {
	const query = `
        SELECT id, topic_id, name, active, created_at, updated_at
        FROM subtopics
        WHERE id = $1
    `
	sub := &models.Subtopic{}
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(&sub.ID, &sub.TopicID, &sub.Name, &sub.Active, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrSubtopicNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (r *SubtopicPostgres) SubtopicsByTopic(ctx context.Context, topicID uuid.UUID) ([]models.Subtopic, error) {
	const query = `
        SELECT id, topic_id, name, active, created_at, updated_at
        FROM subtopics
        WHERE topic_id = $1
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Subtopic
	for rows.Next() {
		var s models.Subtopic
		if err := rows.Scan(&s.ID, &s.TopicID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *SubtopicPostgres) UpdateSubtopic(ctx context.Context, sub *models.Subtopic) error {
	sub.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE subtopics SET name = $1, active = $2, updated_at = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, sub.Name, sub.Active, sub.UpdatedAt, sub.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrSubtopicNotFound
	}
	return nil
}

func (r *SubtopicPostgres) DeleteSubtopic(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subtopics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrSubtopicNotFound
	}
	return nil
}
