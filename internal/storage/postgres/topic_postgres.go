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

type TopicPostgres struct {
	db *pgxpool.Pool
}

func NewTopicPostgres(db *pgxpool.Pool) *TopicPostgres {
	return &TopicPostgres{db: db}
}

func (r *TopicPostgres) CreateTopic(ctx context.Context, topic *models.Topic) (uuid.UUID, error) {
	if topic.ID == uuid.Nil {
		topic.ID = uuid.New()
	}
	now := time.Now().UTC()
	topic.CreatedAt = now
	topic.UpdatedAt = now
	query := `
		INSERT INTO topics (id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, topic.ID, topic.Name, topic.Active, topic.CreatedAt, topic.UpdatedAt)
	if err != nil {
		return uuid.Nil, err
	}
	return topic.ID, nil
}

func (r *TopicPostgres) TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	const query = `
        SELECT id, name, active, created_at, updated_at
        FROM topics
        WHERE id = $1
    `
	topic := &models.Topic{}
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(&topic.ID, &topic.Name, &topic.Active, &topic.CreatedAt, &topic.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrTopicNotFound
		}
		return nil, err
	}
	return topic, nil
}

func (r *TopicPostgres) ListTopics(ctx context.Context) ([]models.Topic, error) {
	const query = `
        SELECT id, name, active, created_at, updated_at
        FROM topics
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func (r *TopicPostgres) TopicsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Topic, error) {
	const query = `
        SELECT id, name, active, created_at, updated_at
        FROM topics
        WHERE id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]models.Topic, len(ids))
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// keep the caller's (search ranking) order
	topics := make([]models.Topic, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func (r *TopicPostgres) UpdateTopic(ctx context.Context, topic *models.Topic) error {
	topic.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE topics SET name = $1, active = $2, updated_at = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, topic.Name, topic.Active, topic.UpdatedAt, topic.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrTopicNotFound
	}
	return nil
}

func (r *TopicPostgres) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrTopicNotFound
	}
	return nil
}
