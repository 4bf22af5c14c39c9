package repository_test

import (
	"context"
	"testing"

	"productapi/internal/domain/model"
	infraRepo "productapi/internal/infra/repository"
	repo "productapi/internal/repository"
	"productapi/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, r *infraRepo.ProductGormRepository, name string, price string, stock int64) model.Product {
	t.Helper()
	p, err := r.Create(context.Background(), model.Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: name + " description",
		Stock:       stock,
	})
	require.NoError(t, err)
	return p
}

func TestProductGormRepository_Create(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))

	p := seedProduct(t, r, "Smartphone", "299.99", 0)

	assert.NotZero(t, p.ID)
	assert.Equal(t, model.ProductStatusActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())

	found, err := r.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("299.99")), "price=%s", found.Price)
	assert.Equal(t, int64(0), found.Stock)
	assert.Equal(t, model.ProductStatusActive, found.Status)
}

// 呼び出し側がstatus=0やIDを渡しても無視する
func TestProductGormRepository_Create_IgnoresIDAndStatus(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))

	p, err := r.Create(context.Background(), model.Product{
		ID:          999,
		Name:        "Tablet",
		Price:       decimal.NewFromInt(10),
		Description: "x",
		Status:      model.ProductStatusInactive,
	})
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), p.ID)
	assert.Equal(t, model.ProductStatusActive, p.Status)
}

func TestProductGormRepository_FindByID_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))

	_, err := r.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductGormRepository_List(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		items, err := r.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Len(t, items, 0)
	})

	a := seedProduct(t, r, "A", "1.50", 1)
	b := seedProduct(t, r, "B", "2", 2)

	t.Run("ordered by id", func(t *testing.T) {
		items, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, a.ID, items[0].ID)
		assert.Equal(t, b.ID, items[1].ID)
	})
}

func TestProductGormRepository_Update_PartialKeepsOtherFields(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))
	ctx := context.Background()

	p := seedProduct(t, r, "Smartphone", "299.99", 7)

	newPrice := decimal.RequireFromString("399.99")
	updated, err := r.Update(ctx, p.ID, model.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Smartphone", updated.Name)
	assert.Equal(t, "Smartphone description", updated.Description)
	assert.Equal(t, int64(7), updated.Stock)

	found, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(newPrice))
	assert.Equal(t, "Smartphone", found.Name)
	assert.Equal(t, int64(7), found.Stock)
}

func TestProductGormRepository_Update_AllFields(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))
	ctx := context.Background()

	p := seedProduct(t, r, "Old", "1", 1)

	name := "New"
	desc := "new description"
	price := decimal.RequireFromString("12.34")
	stock := int64(0)
	updated, err := r.Update(ctx, p.ID, model.ProductPatch{
		Name:        &name,
		Price:       &price,
		Description: &desc,
		Stock:       &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "new description", updated.Description)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, int64(0), updated.Stock)
}

func TestProductGormRepository_Update_NotFound(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))

	name := "x"
	_, err := r.Update(context.Background(), 404, model.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// 論理削除後も読み取りは絞り込まれない
func TestProductGormRepository_UpdateStatusByID_SoftDeleteStillReadable(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))
	ctx := context.Background()

	p := seedProduct(t, r, "Smartphone", "299.99", 3)

	require.NoError(t, r.UpdateStatusByID(ctx, p.ID, model.ProductStatusInactive))

	found, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProductStatusInactive, found.Status)

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.ProductStatusInactive, items[0].Status)
}

func TestProductGormRepository_UpdateStatusByID_MissingIsNoop(t *testing.T) {
	r := infraRepo.NewProductGormRepository(testutil.NewDB(t))

	assert.NoError(t, r.UpdateStatusByID(context.Background(), 12345, model.ProductStatusInactive))
}
