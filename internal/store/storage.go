package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, pgx.Tx, *User) error
		CreateAndInvite(context.Context, *User, string, time.Duration) error
		Activate(context.Context, string) error
		Delete(context.Context, int64) error
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
		IsAdmin(context.Context, int64) (bool, error)
		Update(context.Context, *User) error
		SaveRefreshToken(context.Context, int64, string) error
		GetRefreshToken(context.Context, int64) (string, error)
		DeleteRefreshToken(context.Context, int64) error
		UpdateResetToken(context.Context, string, string, time.Time) error
		GetByResetToken(context.Context, string) (*User, error)
	}
	Toilets interface {
		Create(context.Context, *Toilet) error
		GetByID(context.Context, int64) (*Toilet, error)
		Exists(context.Context, int64) (bool, error)
		List(context.Context, string, int, int) ([]Toilet, int, error)
		Update(context.Context, int64, map[string]interface{}) error
		Delete(context.Context, int64) error
		AddPhotoURL(context.Context, int64, string) error
		RemovePhotoURL(context.Context, int64, string) error
		SetRatingStats(context.Context, int64, float64, int) error
	}
	Ratings interface {
		Create(context.Context, *Rating) error
		Update(context.Context, *Rating) error
		GetByID(context.Context, int64) (*Rating, error)
		GetByToiletAndUser(context.Context, int64, int64) (*Rating, error)
		Delete(context.Context, int64) error
		ListForToilet(context.Context, int64) ([]Rating, error)
		ListAll(context.Context, int, int) ([]Rating, int, error)
		Stats(context.Context, int64) (int, float64, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:   &UsersStore{db},
		Toilets: &ToiletsStore{db},
		Ratings: &RatingsStore{db},
	}
}

func withTx(db *pgxpool.Pool, ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}
