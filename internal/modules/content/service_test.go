package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(
		NewMemoryBannerRepository(),
		NewMemoryGalleryRepository(),
		NewMemoryFeaturedRepository(),
		NewMemoryInstagramRepository(),
		NewMemoryTestimonialRepository(),
	)
}

func TestSaveBannerAssignsID(t *testing.T) {
	svc := newTestService()

	b, err := svc.SaveBanner(context.Background(), "", BannerRequest{Image: "https://cdn/x.jpg"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.ID, "banner_"))
	assert.Equal(t, "image", b.MediaType)
}

func TestSaveBannerRequiresImage(t *testing.T) {
	svc := newTestService()

	_, err := svc.SaveBanner(context.Background(), "", BannerRequest{Title: "no image"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestListBannersOrderedByPriority(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, req := range []BannerRequest{
		{Image: "https://cdn/third.jpg", Priority: 3},
		{Image: "https://cdn/first.jpg", Priority: 1},
		{Image: "https://cdn/unset.jpg"},
		{Image: "https://cdn/second.jpg", Priority: 2},
	} {
		_, err := svc.SaveBanner(ctx, "", req)
		require.NoError(t, err)
	}

	banners, err := svc.ListBanners(ctx)
	require.NoError(t, err)
	images := make([]string, len(banners))
	for i, b := range banners {
		images[i] = b.Image
	}
	assert.Equal(t, []string{
		"https://cdn/first.jpg",
		"https://cdn/second.jpg",
		"https://cdn/third.jpg",
		"https://cdn/unset.jpg",
	}, images)
}

func TestSaveBannerWithIDReplaces(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	b, err := svc.SaveBanner(ctx, "", BannerRequest{Image: "https://cdn/old.jpg"})
	require.NoError(t, err)

	updated, err := svc.SaveBanner(ctx, b.ID, BannerRequest{Image: "https://cdn/new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, b.ID, updated.ID)

	banners, err := svc.ListBanners(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "https://cdn/new.jpg", banners[0].Image)
}

func TestSaveTestimonialValidatesRating(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.SaveTestimonial(ctx, "", TestimonialRequest{Name: "Priya", Text: "Lovely", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRecord, "rating %d", rating)
	}

	tm, err := svc.SaveTestimonial(ctx, "", TestimonialRequest{Name: "Priya", Text: "Lovely", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, tm.Rating)
}

func TestSaveInstagramPostRequiresURL(t *testing.T) {
	svc := newTestService()

	_, err := svc.SaveInstagramPost(context.Background(), "", InstagramPostRequest{URL: "  "})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestDeleteBanner(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	b, err := svc.SaveBanner(ctx, "", BannerRequest{Image: "https://cdn/x.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBanner(ctx, b.ID))

	banners, err := svc.ListBanners(ctx)
	require.NoError(t, err)
	assert.Empty(t, banners)
}
