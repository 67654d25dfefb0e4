package editorial

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starlinkjewels/storefront-backend/internal/store"
)

func newTestService() Service {
	return NewService(NewMemoryBlogRepository(), NewMemoryGuideRepository())
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"How to Choose a Diamond":      "how-to-choose-a-diamond",
		"  Gold & Silver: A Guide!  ":  "gold-silver-a-guide",
		"18K vs 22K":                   "18k-vs-22k",
		"---":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSaveBlogAssignsIDAndDate(t *testing.T) {
	svc := newTestService()

	post, err := svc.SaveBlog(context.Background(), "", BlogRequest{Title: "Caring for Pearls"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(post.ID, "blog_"))
	assert.NotEmpty(t, post.Date)
}

func TestGetBlogByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	post, err := svc.SaveBlog(ctx, "", BlogRequest{Title: "Caring for Pearls"})
	require.NoError(t, err)

	got, err := svc.GetBlog(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)

	_, err = svc.GetBlog(ctx, "blog_missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListBlogsNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, req := range []BlogRequest{
		{Title: "Oldest", Date: "2022-03-01T00:00:00Z"},
		{Title: "Newest", Date: "2024-05-01T00:00:00Z"},
		{Title: "Middle", Date: "2023-01-15T00:00:00Z"},
	} {
		_, err := svc.SaveBlog(ctx, "", req)
		require.NoError(t, err)
	}

	posts, err := svc.ListBlogs(ctx)
	require.NoError(t, err)
	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"Newest", "Middle", "Oldest"}, titles)
}

func TestUpdateBlogKeepsDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	post, err := svc.SaveBlog(ctx, "", BlogRequest{Title: "Original", Date: "2023-01-01T00:00:00Z"})
	require.NoError(t, err)

	updated, err := svc.SaveBlog(ctx, post.ID, BlogRequest{Title: "Edited"})
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01T00:00:00Z", updated.Date)
	assert.Equal(t, "Edited", updated.Title)
}

func TestSaveGuideDerivesSlug(t *testing.T) {
	svc := newTestService()

	g, err := svc.SaveGuide(context.Background(), "", GuideRequest{Title: "How to Choose a Diamond", Published: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(g.ID, "guide_"))
	assert.Equal(t, "how-to-choose-a-diamond", g.Slug)
}

func TestSaveGuideDefaultsOrderToEnd(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "First"})
	require.NoError(t, err)
	second, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "Second"})
	require.NoError(t, err)

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
}

func TestPublishedGuidesOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "Draft"})
	require.NoError(t, err)
	_, err = svc.SaveGuide(ctx, "", GuideRequest{Title: "Live", Published: true})
	require.NoError(t, err)

	public, err := svc.ListPublishedGuides(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := svc.ListAllGuides(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGuidesSortedByOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	two := 2
	zero := 0
	one := 1
	_, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "Third", Order: &two, Published: true})
	require.NoError(t, err)
	_, err = svc.SaveGuide(ctx, "", GuideRequest{Title: "First", Order: &zero, Published: true})
	require.NoError(t, err)
	_, err = svc.SaveGuide(ctx, "", GuideRequest{Title: "Second", Order: &one, Published: true})
	require.NoError(t, err)

	guides, err := svc.ListPublishedGuides(ctx)
	require.NoError(t, err)
	titles := make([]string, len(guides))
	for i, g := range guides {
		titles[i] = g.Title
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}

func TestGetGuideBySlug(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "Ring Sizing", Published: true})
	require.NoError(t, err)

	g, err := svc.GetGuideBySlug(ctx, "ring-sizing")
	require.NoError(t, err)
	assert.Equal(t, "Ring Sizing", g.Title)
}

func TestGetGuideBySlugHidesDrafts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SaveGuide(ctx, "", GuideRequest{Title: "Unfinished"})
	require.NoError(t, err)

	_, err = svc.GetGuideBySlug(ctx, "unfinished")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveBlogSanitizesContent(t *testing.T) {
	svc := newTestService()

	post, err := svc.SaveBlog(context.Background(), "", BlogRequest{
		Title:   "Trends",
		Content: `<p>Stacking rings</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>Stacking rings</p>", post.Content)
}
