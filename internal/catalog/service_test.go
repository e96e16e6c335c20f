package catalog

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_Rate(t *testing.T) {
	ctx := context.Background()

	t.Run("folds rating into running mean", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockRepository(ctrl)
		svc := NewService(repo, 10)

		repo.EXPECT().GetRating(gomock.Any(), 42).Return(2, 7.5, nil)
		repo.EXPECT().SetRating(gomock.Any(), 42, 3, 8.0).Return(nil)

		avg, err := svc.Rate(ctx, 42, 9)
		assert.NoError(t, err)
		assert.Equal(t, 8.0, avg)
	})

	t.Run("rejects out-of-bound rating without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockRepository(ctrl)
		svc := NewService(repo, 10)

		for _, rating := range []float64{0, 0.99, 10.01, 11, -3} {
			_, err := svc.Rate(ctx, 42, rating)
			assert.ErrorIs(t, err, ErrInvalidRating, "rating %v", rating)
		}
	})

	t.Run("bound is configurable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockRepository(ctrl)
		svc := NewService(repo, 5)

		_, err := svc.Rate(ctx, 42, 6)
		assert.ErrorIs(t, err, ErrInvalidRating)

		repo.EXPECT().GetRating(gomock.Any(), 42).Return(0, 0.0, nil)
		repo.EXPECT().SetRating(gomock.Any(), 42, 1, 5.0).Return(nil)
		_, err = svc.Rate(ctx, 42, 5)
		assert.NoError(t, err)
	})

	t.Run("missing game surfaces as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := NewMockRepository(ctrl)
		svc := NewService(repo, 10)

		repo.EXPECT().GetRating(gomock.Any(), 7).Return(0, 0.0, ErrNotFound)

		_, err := svc.Rate(ctx, 7, 8)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Update_ParsesDelimitedLists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, 10)

	game := Game{ID: 5, Name: "Caverna", Description: "Dwarves", YearPublished: 2013}
	repo.EXPECT().Update(gomock.Any(), game, Relations{
		Designers:  []string{"Uwe Rosenberg"},
		Publishers: []string{"Lookout", "Mayfair"},
		Categories: []string{"Strategy"},
		Mechanics:  []string{},
	}).Return(nil)

	err := svc.Update(ctx, game, "Uwe Rosenberg", " Lookout ;Mayfair; Lookout", "Strategy;;", "")
	assert.NoError(t, err)
}

func TestService_Add_NormalizesRelations(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, 10)

	game := Game{ID: 9, Name: "Azul", Description: "Tiles", YearPublished: 2017}
	exp := &Expansion{ID: 91, Name: "Crystal Mosaic"}

	repo.EXPECT().Add(gomock.Any(), game, Relations{
		Designers:  []string{"Michael Kiesling"},
		Publishers: []string{"Next Move"},
		Categories: []string{"Abstract", "Family"},
		Mechanics:  []string{"Drafting"},
	}, exp).Return(nil)

	err := svc.Add(ctx, game, Relations{
		Designers:  []string{"Michael Kiesling", " Michael Kiesling "},
		Publishers: []string{"Next Move", ""},
		Categories: []string{"Abstract", "Family", "Abstract"},
		Mechanics:  []string{" Drafting "},
	}, exp)
	assert.NoError(t, err)
}

func TestService_List_CapsAtOneHundred(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo, 10)

	repo.EXPECT().List(gomock.Any(), 100).Return([]Game{}, nil)

	_, err := svc.List(ctx)
	assert.NoError(t, err)
}
