package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the targeted game does not exist.
var ErrNotFound = errors.New("board game not found")

// Repository defines the contract for catalog data storage.
type Repository interface {
	List(ctx context.Context, limit int) ([]Game, error)
	GetDetails(ctx context.Context, id int) (*GameDetails, error)
	GetAggregatedDetails(ctx context.Context, id int) (*AggregatedDetails, error)
	Search(ctx context.Context, f SearchFilter) ([]Game, error)
	SearchByCategory(ctx context.Context, category string) ([]Game, error)
	SearchByDesigner(ctx context.Context, designer string) ([]Game, error)
	GetRating(ctx context.Context, id int) (usersRated int, average float64, err error)
	SetRating(ctx context.Context, id, usersRated int, average float64) error
	TopRated(ctx context.Context) ([]Game, error)
	LookupRef(ctx context.Context, id int) (GameRef, error)
	Delete(ctx context.Context, id int) error
	Update(ctx context.Context, g Game, rel Relations) error
	Add(ctx context.Context, g Game, rel Relations, exp *Expansion) error
}
