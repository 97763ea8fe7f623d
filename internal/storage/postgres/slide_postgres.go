package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

// SlidePostgres stores slide records with the template payload in a jsonb
// column, mirroring how the authoring UI ships the data blob wholesale.
type SlidePostgres struct {
	db *pgxpool.Pool
}

func NewSlidePostgres(db *pgxpool.Pool) *SlidePostgres {
	return &SlidePostgres{db: db}
}

func (r *SlidePostgres) CreateSlide(ctx context.Context, slide *models.Slide) (uuid.UUID, error) {
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	now := time.Now().UTC()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	data, err := json.Marshal(slide.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal slide data: %w", err)
	}

	query := `
		INSERT INTO slides (
			id, subtopic_id, template, title, bg_color, decor_color,
			order_index, active, data, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		slide.ID, slide.SubtopicID, slide.Template, slide.Title,
		slide.BgColor, slide.DecorColor, slide.OrderIndex, slide.Active,
		data, slide.CreatedAt, slide.UpdatedAt,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert slide: %w", err)
	}
	return slide.ID, nil
}

func (r *SlidePostgres) SlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	const query = `
        SELECT id, subtopic_id, template, title, bg_color, decor_color,
               order_index, active, data, created_at, updated_at
        FROM slides
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	slide, err := scanSlide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrSlideNotFound
		}
		return nil, err
	}
	return slide, nil
}

func (r *SlidePostgres) SlidesBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]models.Slide, error) {
	const query = `
        SELECT id, subtopic_id, template, title, bg_color, decor_color,
               order_index, active, data, created_at, updated_at
        FROM slides
        WHERE subtopic_id = $1
        ORDER BY order_index
    `
	rows, err := r.db.Query(ctx, query, subtopicID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []models.Slide
	for rows.Next() {
		slide, err := scanSlide(rows)
		if err != nil {
			return nil, err
		}
		slides = append(slides, *slide)
	}
	return slides, rows.Err()
}

func (r *SlidePostgres) GetMaxOrderIndex(ctx context.Context, subtopicID uuid.UUID) (int, error) {
	const query = `
        SELECT COALESCE(MAX(order_index), -1)
        FROM slides
        WHERE subtopic_id = $1
    `
	var max int
	if err := r.db.QueryRow(ctx, query, subtopicID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *SlidePostgres) UpdateSlide(ctx context.Context, slide *models.Slide) error {
	slide.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(slide.Data)
	if err != nil {
		return fmt.Errorf("marshal slide data: %w", err)
	}

	query := `
		UPDATE slides SET
			template = $1, title = $2, bg_color = $3, decor_color = $4,
			order_index = $5, active = $6, data = $7, updated_at = $8
		WHERE id = $9
	`
	tag, err := r.db.Exec(ctx, query,
		slide.Template, slide.Title, slide.BgColor, slide.DecorColor,
		slide.OrderIndex, slide.Active, data, slide.UpdatedAt, slide.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrSlideNotFound
	}
	return nil
}

func (r *SlidePostgres) SwapSlides(ctx context.Context, slideID1, slideID2 uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var order1, order2 int
	if err := tx.QueryRow(ctx, `SELECT order_index FROM slides WHERE id = $1`, slideID1).Scan(&order1); err != nil {
		return err
	}
	if err := tx.QueryRow(ctx, `SELECT order_index FROM slides WHERE id = $1`, slideID2).Scan(&order2); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE slides SET order_index = $1 WHERE id = $2`, order2, slideID1); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE slides SET order_index = $1 WHERE id = $2`, order1, slideID2); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *SlidePostgres) DeleteSlideAndUpdateOrder(ctx context.Context, slideID, subtopicID uuid.UUID, orderIndex int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM slides WHERE id = $1`, slideID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrSlideNotFound
	}
	_, err = tx.Exec(ctx,
		`UPDATE slides SET order_index = order_index - 1 WHERE subtopic_id = $1 AND order_index > $2`,
		subtopicID, orderIndex,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlide(row rowScanner) (*models.Slide, error) {
	slide := &models.Slide{}
	var data []byte
	err := row.Scan(
		&slide.ID, &slide.SubtopicID, &slide.Template, &slide.Title,
		&slide.BgColor, &slide.DecorColor, &slide.OrderIndex, &slide.Active,
		&data, &slide.CreatedAt, &slide.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &slide.Data); err != nil {
			return nil, fmt.Errorf("unmarshal slide data: %w", err)
		}
	}
	return slide, nil
}
