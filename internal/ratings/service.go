// Package ratings holds the aggregation logic behind toilet reviews:
// one rating per user per toilet, with the toilet's average and count
// recomputed on every write.
package ratings

import (
	"context"
	"errors"
	"fmt"
	"math"

	"loocator/internal/store"
)

var (
	ErrInvalidScore    = errors.New("score must be between 1 and 5")
	ErrUnauthenticated = errors.New("caller is not authenticated")
	ErrNotOwner        = errors.New("caller does not own this rating")
)

// RatingStore is the slice of the storage layer the aggregator needs.
type RatingStore interface {
	Create(context.Context, *store.Rating) error
	Update(context.Context, *store.Rating) error
	GetByID(context.Context, int64) (*store.Rating, error)
	GetByToiletAndUser(context.Context, int64, int64) (*store.Rating, error)
	Delete(context.Context, int64) error
	ListForToilet(context.Context, int64) ([]store.Rating, error)
	ListAll(context.Context, int, int) ([]store.Rating, int, error)
	Stats(context.Context, int64) (int, float64, error)
}

// ToiletStore is the slice of the toilet storage the aggregator writes
// derived fields through.
type ToiletStore interface {
	Exists(context.Context, int64) (bool, error)
	SetRatingStats(context.Context, int64, float64, int) error
}

// AdminChecker answers whether a caller holds administrator privilege.
type AdminChecker interface {
	IsAdmin(context.Context, int64) (bool, error)
}

// Stats is the materialized aggregate stored on a toilet.
type Stats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Service coordinates rating writes with aggregate recomputes. Identity
// is passed explicitly on every call; there is no ambient session state.
type Service struct {
	ratings RatingStore
	toilets ToiletStore
	admins  AdminChecker
}

func NewService(ratings RatingStore, toilets ToiletStore, admins AdminChecker) *Service {
	return &Service{
		ratings: ratings,
		toilets: toilets,
		admins:  admins,
	}
}

// SubmitInput carries one rating submission. UserName and UserEmail are
// snapshotted onto the rating record at write time.
type SubmitInput struct {
	ToiletID  int64
	UserID    int64
	UserName  string
	UserEmail string
	Score     int
	Comment   string
}

// Submit creates the caller's rating for a toilet, or overwrites it if
// one already exists, then recomputes the toilet's aggregate. At most
// one rating per (user, toilet) pair survives any sequence of submits.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*store.Rating, error) {
	if in.Score < 1 || in.Score > 5 {
		return nil, ErrInvalidScore
	}
	if in.UserID == 0 {
		return nil, ErrUnauthenticated
	}

	exists, err := s.toilets.Exists(ctx, in.ToiletID)
	if err != nil {
		return nil, fmt.Errorf("checking toilet: %w", err)
	}
	if !exists {
		return nil, store.ErrNotFound
	}

	rating, err := s.ratings.GetByToiletAndUser(ctx, in.ToiletID, in.UserID)
	switch {
	case err == nil:
		// Update path: keep identity and creation time, overwrite the rest.
		rating.Score = in.Score
		rating.Comment = in.Comment
		if err := s.ratings.Update(ctx, rating); err != nil {
			return nil, err
		}
	case errors.Is(err, store.ErrNotFound):
		rating = &store.Rating{
			ToiletID:  in.ToiletID,
			UserID:    in.UserID,
			UserName:  in.UserName,
			UserEmail: in.UserEmail,
			Score:     in.Score,
			Comment:   in.Comment,
		}
		if err := s.ratings.Create(ctx, rating); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if _, err := s.Recompute(ctx, in.ToiletID); err != nil {
		return nil, err
	}
	return rating, nil
}

// Delete removes a rating on behalf of its author or an administrator,
// then recomputes the toilet's aggregate. Deleting an already-gone
// rating reports store.ErrNotFound; callers may treat that as success.
func (s *Service) Delete(ctx context.Context, ratingID, callerID int64) error {
	if callerID == 0 {
		return ErrUnauthenticated
	}

	rating, err := s.ratings.GetByID(ctx, ratingID)
	if err != nil {
		return err
	}

	if rating.UserID != callerID {
		isAdmin, err := s.admins.IsAdmin(ctx, callerID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if !isAdmin {
			return ErrNotOwner
		}
	}

	if err := s.ratings.Delete(ctx, ratingID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	_, err = s.Recompute(ctx, rating.ToiletID)
	return err
}

// Recompute reads the aggregate over all ratings for a toilet and writes
// it back onto the toilet row. Average is the arithmetic mean rounded to
// one decimal place, 0 when there are no ratings. The recompute is not
// atomic with the triggering write; concurrent writers settle on the
// value of whichever recompute lands last.
func (s *Service) Recompute(ctx context.Context, toiletID int64) (Stats, error) {
	count, average, err := s.ratings.Stats(ctx, toiletID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Average: math.Round(average*10) / 10,
		Count:   count,
	}

	if err := s.toilets.SetRatingStats(ctx, toiletID, stats.Average, stats.Count); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ListForToilet returns a toilet's ratings ordered by creation time
// descending.
func (s *Service) ListForToilet(ctx context.Context, toiletID int64) ([]store.Rating, error) {
	return s.ratings.ListForToilet(ctx, toiletID)
}

// ListAll returns every rating, newest first, for the admin moderation
// feed.
func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]store.Rating, int, error) {
	return s.ratings.ListAll(ctx, limit, offset)
}
