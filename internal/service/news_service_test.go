package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-admin-panel/internal/model"
)

var fixedClock = func() time.Time { return time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC) }

func newNewsService(t *testing.T) *NewsService {
	data := seedData(t)
	return NewNewsService(data.News.Articles, data.News.Categories, newQuietBus(), fixedClock)
}

func articleIDs(items []model.NewsArticle) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestNewsService_Filter(t *testing.T) {
	svc := newNewsService(t)

	cases := []struct {
		name  string
		query model.NewsQuery
		want  []string
	}{
		{"all", model.NewsQuery{Status: "all"}, []string{"1", "2", "3"}},
		{"published", model.NewsQuery{Status: "published"}, []string{"1", "2"}},
		{"draft", model.NewsQuery{Status: "draft"}, []string{"3"}},
		{"category", model.NewsQuery{Category: "Development"}, []string{"2"}},
		{"status ignores case", model.NewsQuery{Status: "Published"}, []string{"1", "2"}},
		{"search title", model.NewsQuery{Search: "api"}, []string{"2"}},
		{"search excerpt", model.NewsQuery{Search: "IMPROVEMENTS"}, []string{"1"}},
		{"no match", model.NewsQuery{Search: "zzz"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, _ := svc.List(tc.query)
			assert.Equal(t, tc.want, articleIDs(items))
		})
	}
}

func TestNewsService_Create(t *testing.T) {
	svc := newNewsService(t)

	t.Run("defaults", func(t *testing.T) {
		md := "# Title\n" + strings.Repeat("x", 150)
		article, err := svc.Create(model.CreateArticleRequest{
			Title:           "Release",
			MarkdownContent: md,
			Tags:            []string{"go", "go", " release "},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID)
		assert.Equal(t, "2024-02-01", article.PublishDate)
		assert.Equal(t, model.StatusDraft, article.Status)
		assert.Equal(t, "General", article.Category)
		assert.Equal(t, "Administrator", article.Author)
		assert.Equal(t, []string{"go", "release"}, article.Tags)
		assert.Zero(t, article.Views)
		assert.Zero(t, article.Likes)
		assert.Zero(t, article.Comments)
		assert.Equal(t, md[:100]+"...", article.Excerpt)

		items, _ := svc.List(model.NewsQuery{})
		assert.Equal(t, article.ID, items[len(items)-1].ID)
	})

	t.Run("excerpt falls back to content", func(t *testing.T) {
		article, err := svc.Create(model.CreateArticleRequest{Title: "Short", Content: "plain body"})
		require.NoError(t, err)
		assert.Equal(t, "plain body...", article.Excerpt)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Create(model.CreateArticleRequest{Content: "body"})
		assert.Error(t, err)

		_, err = svc.Create(model.CreateArticleRequest{Title: "No body"})
		assert.Error(t, err)

		_, err = svc.Create(model.CreateArticleRequest{Title: "x", Content: "y", Status: "deleted"})
		assert.Error(t, err)
	})
}

func TestNewsService_UpdatePreservesFields(t *testing.T) {
	svc := newNewsService(t)
	original, err := svc.Get("1")
	require.NoError(t, err)

	status := model.StatusArchived
	updated, err := svc.Update("1", model.UpdateArticleRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.StatusArchived, updated.Status)
	original.Status = model.StatusArchived
	assert.Equal(t, original, updated)

	t.Run("invalid patch leaves record", func(t *testing.T) {
		bad := "gone"
		_, err := svc.Update("1", model.UpdateArticleRequest{Status: &bad})
		assert.Error(t, err)

		current, _ := svc.Get("1")
		assert.Equal(t, model.StatusArchived, current.Status)
	})

	t.Run("status is trimmed like on create", func(t *testing.T) {
		padded := " Draft"
		updated, err := svc.Update("1", model.UpdateArticleRequest{Status: &padded})
		require.NoError(t, err)
		assert.Equal(t, model.StatusDraft, updated.Status)
	})
}

func TestNewsService_StatsAndDelete(t *testing.T) {
	svc := newNewsService(t)
	assert.Equal(t, model.NewsStats{Total: 3, Drafts: 1, Published: 2}, svc.Stats())

	_, err := svc.Select("3")
	require.NoError(t, err)
	require.NoError(t, svc.Delete("3"))
	_, ok := svc.Selected()
	assert.False(t, ok)
	assert.Equal(t, model.NewsStats{Total: 2, Published: 2}, svc.Stats())

	assert.Error(t, svc.Delete("3"))
}

func TestNewsService_Render(t *testing.T) {
	svc := newNewsService(t)

	rendered, err := svc.Render("1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered.HTML, `<h1 class="text-2xl font-bold mb-4">Security system update</h1>`))

	preview := svc.Preview("**bold**")
	assert.Equal(t, `<strong class="font-semibold">bold</strong>`, preview.HTML)

	_, err = svc.Render("nope")
	assert.Error(t, err)
}
