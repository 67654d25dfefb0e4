package catalog

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

func newTestService() Service {
	return NewService(
		NewMemoryCategoryRepository(),
		NewMemoryProductRepository(),
		func(context.Context) string { return "+919967381180" },
	)
}

func TestCreateCategoryAssignsID(t *testing.T) {
	svc := newTestService()

	c, err := svc.CreateCategory(context.Background(), CategoryRequest{Name: "Rings"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "cat_"))

	got, err := svc.GetCategory(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rings", got.Name)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateCategory(context.Background(), CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestListCategoriesOrderedByPriority(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, req := range []CategoryRequest{
		{Name: "Bracelets", Priority: 3},
		{Name: "Rings", Priority: 1},
		{Name: "Earrings"},
		{Name: "Necklaces", Priority: 2},
	} {
		_, err := svc.CreateCategory(ctx, req)
		require.NoError(t, err)
	}

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Rings", "Necklaces", "Bracelets", "Earrings"}, names)
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductRequest{Name: "Solitaire Ring", Price: "$500"})
	require.NoError(t, err)
	require.NotEmpty(t, p.CreatedAt)

	updated, err := svc.UpdateProduct(ctx, p.ID, ProductRequest{Name: "Solitaire Ring", Price: "$450"})
	require.NoError(t, err)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "$450", updated.Price)
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateProduct(context.Background(), "prod_missing", ProductRequest{Name: "X"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteCategoryKeepsProducts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Rings"})
	require.NoError(t, err)
	p, err := svc.CreateProduct(ctx, ProductRequest{CategoryID: c.ID, Name: "Band"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, c.ID))

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.CategoryID)
}

func TestListCategoryProducts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryRequest{Name: "Rings"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductRequest{CategoryID: c.ID, Name: "Band", Price: "$100"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductRequest{CategoryID: c.ID, Name: "Halo", Price: "$50"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, ProductRequest{CategoryID: "other", Name: "Stud", Price: "$10"})
	require.NoError(t, err)

	products, err := svc.ListCategoryProducts(ctx, c.ID, SortPriceLow)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Halo", products[0].Name)
	assert.Equal(t, "Band", products[1].Name)
}

func TestPurchaseLink(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductRequest{
		Name:        "Solitaire Ring",
		Price:       "USD 1,250",
		Description: "<p>Classic <b>diamond</b> solitaire</p>",
	})
	require.NoError(t, err)

	link, err := svc.PurchaseLink(ctx, p.ID)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "https://wa.me/+919967381180?text="))
	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/+919967381180?text="))
	require.NoError(t, err)
	assert.Equal(t, "Hi! I'm interested in:\n\n*Solitaire Ring*\nPrice: $1250\n\nClassic diamond solitaire", decoded)
}

func TestPurchaseLinkUnknownProduct(t *testing.T) {
	svc := newTestService()

	_, err := svc.PurchaseLink(context.Background(), "prod_missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
