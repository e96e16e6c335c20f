package catalog

import (
	"context"
	"errors"
)

// ErrInvalidRating is returned when a submitted rating falls outside the
// configured bound. Nothing is written to the store in that case.
var ErrInvalidRating = errors.New("rating out of range")

const listLimit = 100

// Service provides catalog business logic over a Repository.
type Service struct {
	repo      Repository
	ratingMax float64
}

// NewService creates a catalog service. ratingMax is the inclusive upper
// bound for submitted ratings (the lower bound is always 1); values < 1
// fall back to the default of 10.
func NewService(repo Repository, ratingMax float64) *Service {
	if ratingMax < 1 {
		ratingMax = 10
	}
	return &Service{repo: repo, ratingMax: ratingMax}
}

// RatingMax reports the configured upper rating bound.
func (s *Service) RatingMax() float64 { return s.ratingMax }

// List returns the first page of the catalog, capped at 100 rows.
func (s *Service) List(ctx context.Context) ([]Game, error) {
	return s.repo.List(ctx, listLimit)
}

// Details fetches a game with its relation name lists and expansions.
func (s *Service) Details(ctx context.Context, id int) (*GameDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

// AggregatedDetails fetches a game through the stored aggregation routine.
func (s *Service) AggregatedDetails(ctx context.Context, id int) (*AggregatedDetails, error) {
	return s.repo.GetAggregatedDetails(ctx, id)
}

// Search returns the games matching a conjunctive filter composition.
func (s *Service) Search(ctx context.Context, f SearchFilter) ([]Game, error) {
	return s.repo.Search(ctx, f)
}

func (s *Service) SearchByCategory(ctx context.Context, category string) ([]Game, error) {
	return s.repo.SearchByCategory(ctx, category)
}

func (s *Service) SearchByDesigner(ctx context.Context, designer string) ([]Game, error) {
	return s.repo.SearchByDesigner(ctx, designer)
}

// Rate validates the rating bound, folds the rating into the game's running
// mean and persists the new count and average. Returns the new average,
// rounded to two decimal places.
func (s *Service) Rate(ctx context.Context, id int, rating float64) (float64, error) {
	if rating < 1 || rating > s.ratingMax {
		return 0, ErrInvalidRating
	}
	usersRated, average, err := s.repo.GetRating(ctx, id)
	if err != nil {
		return 0, err
	}
	newAverage, newCount := NextAverage(average, usersRated, rating)
	if err := s.repo.SetRating(ctx, id, newCount, newAverage); err != nil {
		return 0, err
	}
	return newAverage, nil
}

// TopRated returns the precomputed ranking rows as-is.
func (s *Service) TopRated(ctx context.Context) ([]Game, error) {
	return s.repo.TopRated(ctx)
}

// DeleteLookup is the confirm-before-delete probe: id and title only, no
// mutation.
func (s *Service) DeleteLookup(ctx context.Context, id int) (GameRef, error) {
	return s.repo.LookupRef(ctx, id)
}

// Delete removes a game and all rows referencing it, atomically.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Update overwrites all scalar columns of a game and rewrites its four
// association lists. The relation arguments are semicolon-delimited name
// lists as received on the wire.
func (s *Service) Update(ctx context.Context, g Game, designers, publishers, categories, mechanics string) error {
	rel := Relations{
		Designers:  SplitNames(designers),
		Publishers: SplitNames(publishers),
		Categories: SplitNames(categories),
		Mechanics:  SplitNames(mechanics),
	}
	return s.repo.Update(ctx, g, rel)
}

// Add creates a game, its reference entities and association rows, and an
// optional expansion, atomically. Relation lists are deduplicated with
// first-occurrence order preserved before anything touches the store.
func (s *Service) Add(ctx context.Context, g Game, rel Relations, exp *Expansion) error {
	rel = Relations{
		Designers:  NormalizeNames(rel.Designers),
		Publishers: NormalizeNames(rel.Publishers),
		Categories: NormalizeNames(rel.Categories),
		Mechanics:  NormalizeNames(rel.Mechanics),
	}
	return s.repo.Add(ctx, g, rel, exp)
}
