package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxToiletImages caps the gallery size; the first image is the thumbnail.
const MaxToiletImages = 3

// Toilet represents a reviewable location in the database.
type Toilet struct {
	ID       int64    `json:"id"`
	Location string   `json:"location"`
	Images   []string `json:"images"`

	// Derived fields, written only by the rating aggregator.
	AverageRating    float64    `json:"average_rating"`
	TotalRatings     int        `json:"total_ratings"`
	LastRatingUpdate *time.Time `json:"last_rating_update,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ToiletsStore struct {
	db *pgxpool.Pool
}

// Create inserts a new toilet. The images slice may be empty; handlers
// enforce the MaxToiletImages cap before calling.
func (s *ToiletsStore) Create(ctx context.Context, toilet *Toilet) error {
	query := `
        INSERT INTO toilets (location, images)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(ctx, query,
		toilet.Location,
		toilet.Images,
	).Scan(&toilet.ID, &toilet.CreatedAt, &toilet.UpdatedAt)
}

// GetByID retrieves a toilet by its ID. Rows written before the gallery
// existed carry a single image_url column; normalizeImages folds both
// shapes into the Images slice so call sites never see the legacy field.
func (s *ToiletsStore) GetByID(ctx context.Context, toiletID int64) (*Toilet, error) {
	query := `
        SELECT id, location, images, image_url, average_rating, total_ratings,
               last_rating_update, created_at, updated_at
        FROM toilets
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var t Toilet
	var legacyURL *string
	err := s.db.QueryRow(ctx, query, toiletID).Scan(
		&t.ID,
		&t.Location,
		&t.Images,
		&legacyURL,
		&t.AverageRating,
		&t.TotalRatings,
		&t.LastRatingUpdate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	normalizeImages(&t, legacyURL)
	return &t, nil
}

func (s *ToiletsStore) Exists(ctx context.Context, toiletID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM toilets WHERE id = $1)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(ctx, query, toiletID).Scan(&exists)
	return exists, err
}

// List returns toilets matching the search term (all toilets when empty)
// plus the unpaginated total for pagination metadata.
func (s *ToiletsStore) List(ctx context.Context, search string, limit, offset int) ([]Toilet, int, error) {
	query := `
        SELECT id, location, images, image_url, average_rating, total_ratings,
               last_rating_update, created_at, updated_at,
               COUNT(*) OVER() AS total
        FROM toilets
        WHERE ($1 = '' OR location ILIKE '%' || $1 || '%')
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var toilets []Toilet
	var total int
	for rows.Next() {
		var t Toilet
		var legacyURL *string
		err := rows.Scan(
			&t.ID,
			&t.Location,
			&t.Images,
			&legacyURL,
			&t.AverageRating,
			&t.TotalRatings,
			&t.LastRatingUpdate,
			&t.CreatedAt,
			&t.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}
		normalizeImages(&t, legacyURL)
		toilets = append(toilets, t)
	}
	return toilets, total, rows.Err()
}

// Update updates a toilet's content fields. Derived rating fields are
// owned by the aggregator and rejected here.
func (s *ToiletsStore) Update(ctx context.Context, toiletID int64, updateData map[string]interface{}) error {
	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	for key, value := range updateData {
		switch key {
		case "location":
			setClauses = append(setClauses, fmt.Sprintf("location = $%d", argCounter))
			args = append(args, value)
			argCounter++
		case "images":
			images, ok := value.([]string)
			if !ok || len(images) > MaxToiletImages {
				return fmt.Errorf("invalid images data")
			}
			// Writing the gallery retires the legacy column for this row.
			setClauses = append(setClauses, fmt.Sprintf("images = $%d", argCounter), "image_url = NULL")
			args = append(args, images)
			argCounter++
		default:
			return fmt.Errorf("unsupported field: %s", key)
		}
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(
		"UPDATE toilets SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(setClauses, ", "), argCounter,
	)
	args = append(args, toiletID)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update toilet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a toilet; its ratings go with it via ON DELETE CASCADE.
func (s *ToiletsStore) Delete(ctx context.Context, toiletID int64) error {
	query := `DELETE FROM toilets WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, toiletID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddPhotoURL appends a new photo URL to a toilet's images array.
func (s *ToiletsStore) AddPhotoURL(ctx context.Context, toiletID int64, photoURL string) error {
	query := `
        UPDATE toilets
        SET images = array_append(images, $1), updated_at = NOW()
        WHERE id = $2 AND COALESCE(array_length(images, 1), 0) < $3
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, photoURL, toiletID, MaxToiletImages)
	if err != nil {
		return fmt.Errorf("failed to add photo URL: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

// RemovePhotoURL removes a specific photo URL from a toilet's images array.
func (s *ToiletsStore) RemovePhotoURL(ctx context.Context, toiletID int64, photoURL string) error {
	query := `
        UPDATE toilets
        SET images = array_remove(images, $1), updated_at = NOW()
        WHERE id = $2
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, query, photoURL, toiletID)
	if err != nil {
		return fmt.Errorf("failed to remove photo URL: %w", err)
	}
	return nil
}

// SetRatingStats writes the recomputed aggregate onto the toilet row.
// Only the rating aggregator calls this.
func (s *ToiletsStore) SetRatingStats(ctx context.Context, toiletID int64, average float64, count int) error {
	query := `
        UPDATE toilets
        SET average_rating = $1, total_ratings = $2, last_rating_update = NOW()
        WHERE id = $3
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.Exec(ctx, query, average, count, toiletID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeImages(t *Toilet, legacyURL *string) {
	if len(t.Images) == 0 && legacyURL != nil && *legacyURL != "" {
		t.Images = []string{*legacyURL}
	}
}
