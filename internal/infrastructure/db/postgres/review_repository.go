package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/csemotors/dealership/internal/core/domain"
	"github.com/csemotors/dealership/internal/core/ports"
)

// ReviewRepository persists vehicle reviews.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Insert(ctx context.Context, input ports.ReviewInput) (domain.Review, error) {
	const query = `
		INSERT INTO reviews (inv_id, account_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id, inv_id, account_id, rating, comment, created_at`
	var review domain.Review
	err := r.db.QueryRowContext(ctx, query,
		input.VehicleID, input.AccountID, input.Rating, input.Comment,
	).Scan(
		&review.ID,
		&review.VehicleID,
		&review.AccountID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		return domain.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) ListByVehicle(ctx context.Context, vehicleID int) ([]domain.Review, error) {
	const query = `
		SELECT r.review_id, r.inv_id, r.account_id, r.rating, r.comment, r.created_at,
			a.account_firstname, a.account_lastname
		FROM reviews r
		JOIN account a ON a.account_id = r.account_id
		WHERE r.inv_id = $1
		ORDER BY r.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.VehicleID,
			&review.AccountID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.ReviewerFirst,
			&review.ReviewerLast,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
