package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tourism-App/internal/domain/model"
)

func TestStaticPlacesRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticPlacesRepository()

	assert.Len(t, repo.GetAll(ctx), 6)
	assert.Equal(t, DefaultPlaceID, repo.GetDefault(ctx).ID)

	_, ok := repo.GetByID(ctx, "ranchi")
	assert.False(t, ok)

	t.Run("キーワードで検索", func(t *testing.T) {
		place, ok := repo.FindByKeyword(ctx, "betla safari")
		require.True(t, ok)
		assert.Equal(t, "betla", place.ID)

		_, ok = repo.FindByKeyword(ctx, "Tribal Villages")
		assert.False(t, ok)
	})
}

func TestStaticPlacesRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticPlacesRepository()

	byID, ok := repo.GetByID(ctx, "hundru")
	require.True(t, ok)
	byID.Name = "changed"
	byID.Highlights[0] = "changed"

	byKeyword, ok := repo.FindByKeyword(ctx, "Netarhat")
	require.True(t, ok)
	byKeyword.Activities[0] = "changed"

	repo.GetDefault(ctx).Description = "changed"
	repo.GetAll(ctx)[2].Keywords[0] = "changed"

	hundru, _ := repo.GetByID(ctx, "hundru")
	assert.Equal(t, "Hundru Falls", hundru.Name)
	assert.Equal(t, "98m High Waterfall", hundru.Highlights[0])

	netarhat := repo.GetDefault(ctx)
	assert.Equal(t, "Photography", netarhat.Activities[0])
	assert.NotEqual(t, "changed", netarhat.Description)

	_, ok = repo.FindByKeyword(ctx, "Betla National Park")
	assert.True(t, ok)
}

func TestStaticProductsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStaticProductsRepository()

	products := repo.GetAll(ctx)
	require.NotEmpty(t, products)

	p, err := repo.GetByID(ctx, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, products[0], *p)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrProductNotFound))
}
