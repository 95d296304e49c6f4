package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Rating is one user's review of one toilet. The author's display name
// and email are captured at write time so the moderation feed survives
// account changes.
type Rating struct {
	ID        int64     `json:"id"`
	ToiletID  int64     `json:"toilet_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Score     int       `json:"score"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RatingsStore struct {
	db *pgxpool.Pool
}

func (s *RatingsStore) Create(ctx context.Context, rating *Rating) error {
	query := `
        INSERT INTO ratings (toilet_id, user_id, user_name, user_email, score, comment)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(ctx, query,
		rating.ToiletID,
		rating.UserID,
		rating.UserName,
		rating.UserEmail,
		rating.Score,
		rating.Comment,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
}

// Update overwrites score and comment of an existing rating, keeping its
// creation timestamp.
func (s *RatingsStore) Update(ctx context.Context, rating *Rating) error {
	query := `
        UPDATE ratings
        SET score = $1, comment = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(ctx, query,
		rating.Score,
		rating.Comment,
		rating.ID,
	).Scan(&rating.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return ErrNotFound
		default:
			return err
		}
	}
	return nil
}

func (s *RatingsStore) GetByID(ctx context.Context, ratingID int64) (*Rating, error) {
	query := `
        SELECT id, toilet_id, user_id, user_name, user_email, score, comment, created_at, updated_at
        FROM ratings
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var r Rating
	err := s.db.QueryRow(ctx, query, ratingID).Scan(
		&r.ID, &r.ToiletID, &r.UserID, &r.UserName, &r.UserEmail,
		&r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}
	return &r, nil
}

// GetByToiletAndUser looks up the single rating a user may hold for a
// toilet. ErrNotFound means the submit path should insert.
func (s *RatingsStore) GetByToiletAndUser(ctx context.Context, toiletID, userID int64) (*Rating, error) {
	query := `
        SELECT id, toilet_id, user_id, user_name, user_email, score, comment, created_at, updated_at
        FROM ratings
        WHERE toilet_id = $1 AND user_id = $2
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var r Rating
	err := s.db.QueryRow(ctx, query, toiletID, userID).Scan(
		&r.ID, &r.ToiletID, &r.UserID, &r.UserName, &r.UserEmail,
		&r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}
	return &r, nil
}

func (s *RatingsStore) Delete(ctx context.Context, ratingID int64) error {
	query := `DELETE FROM ratings WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, ratingID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForToilet returns all ratings for a toilet, newest first.
func (s *RatingsStore) ListForToilet(ctx context.Context, toiletID int64) ([]Rating, error) {
	query := `
        SELECT id, toilet_id, user_id, user_name, user_email, score, comment, created_at, updated_at
        FROM ratings
        WHERE toilet_id = $1
        ORDER BY created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, toiletID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRatings(rows)
}

// ListAll returns every rating across toilets, newest first, for the
// admin moderation feed, plus the unpaginated total.
func (s *RatingsStore) ListAll(ctx context.Context, limit, offset int) ([]Rating, int, error) {
	query := `
        SELECT id, toilet_id, user_id, user_name, user_email, score, comment, created_at, updated_at,
               COUNT(*) OVER() AS total
        FROM ratings
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ratings []Rating
	var total int
	for rows.Next() {
		var r Rating
		err := rows.Scan(
			&r.ID, &r.ToiletID, &r.UserID, &r.UserName, &r.UserEmail,
			&r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, err
		}
		ratings = append(ratings, r)
	}
	return ratings, total, rows.Err()
}

// Stats computes the aggregate over all ratings for a toilet in a single
// query; AVG is coalesced to 0 for the zero-rating case.
func (s *RatingsStore) Stats(ctx context.Context, toiletID int64) (total int, average float64, err error) {
	query := `
        SELECT
            COUNT(id) AS total_ratings,
            COALESCE(AVG(score), 0) AS average_score
        FROM ratings
        WHERE toilet_id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err = s.db.QueryRow(ctx, query, toiletID).Scan(&total, &average)
	return total, average, err
}

func scanRatings(rows pgx.Rows) ([]Rating, error) {
	var ratings []Rating
	for rows.Next() {
		var r Rating
		err := rows.Scan(
			&r.ID, &r.ToiletID, &r.UserID, &r.UserName, &r.UserEmail,
			&r.Score, &r.Comment, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}
