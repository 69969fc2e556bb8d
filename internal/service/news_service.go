package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/markdown"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/repository"
	"go-admin-panel/internal/util"
	"go-admin-panel/pkg/apierror"
)

const (
	topicNews      = "news"
	excerptLength  = 100
	defaultAuthor  = "Administrator"
	excerptEllipse = "..."
)

type NewsService struct {
	articles   *repository.Collection[model.NewsArticle]
	categories []string
	bus        event.Bus
	now        func() time.Time
}

func NewNewsService(seed []model.NewsArticle, categories []string, bus event.Bus, clock func() time.Time) *NewsService {
	return &NewsService{
		articles:   repository.NewCollection(func(a model.NewsArticle) string { return a.ID }, cloneArticle, seed),
		categories: append([]string(nil), categories...),
		bus:        bus,
		now:        clockOrNow(clock),
	}
}

func (s *NewsService) Categories() []string {
	return append([]string{}, s.categories...)
}

func (s *NewsService) List(query model.NewsQuery) ([]model.NewsArticle, model.Meta) {
	items := s.articles.Filter(articleFilter(query))
	return model.Paginate(items, query.Page, query.Limit)
}

func (s *NewsService) Get(id string) (model.NewsArticle, error) {
	article, err := s.articles.Get(id)
	if err != nil {
		return model.NewsArticle{}, apierror.NotFound("article not found", id)
	}
	return article, nil
}

func (s *NewsService) Create(request model.CreateArticleRequest) (model.NewsArticle, error) {
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return model.NewsArticle{}, apierror.BadRequest("title is required", "title")
	}
	if strings.TrimSpace(request.Content) == "" && strings.TrimSpace(request.MarkdownContent) == "" {
		return model.NewsArticle{}, apierror.BadRequest("content or markdownContent is required", "content")
	}

	status := normalizeOption(request.Status)
	if status == "" {
		status = model.StatusDraft
	}
	if !validArticleStatus(status) {
		return model.NewsArticle{}, apierror.BadRequest("status must be one of: draft|published|archived", "status")
	}

	author := strings.TrimSpace(request.Author)
	if author == "" {
		author = defaultAuthor
	}

	category := strings.TrimSpace(request.Category)
	if category == "" && len(s.categories) > 0 {
		category = s.categories[0]
	}

	excerpt := strings.TrimSpace(request.Excerpt)
	if excerpt == "" {
		source := request.MarkdownContent
		if source == "" {
			source = request.Content
		}
		excerpt = defaultExcerpt(source)
	}

	article := model.NewsArticle{
		ID:              uuid.NewString(),
		Title:           title,
		Content:         request.Content,
		MarkdownContent: request.MarkdownContent,
		Excerpt:         excerpt,
		Author:          author,
		Category:        category,
		Status:          status,
		PublishDate:     s.now().Format(dateOnly),
		Tags:            util.UniqueStrings(request.Tags),
		Featured:        request.Featured,
	}

	if err := s.articles.Add(article); err != nil {
		return model.NewsArticle{}, err
	}

	publish(s.bus, event.TypeRecordCreated, topicNews, RecordPayload{ID: article.ID, Record: article})
	return article, nil
}

// Update merges the provided fields. Counters and publish date are not editable.
func (s *NewsService) Update(id string, request model.UpdateArticleRequest) (model.NewsArticle, error) {
	updated, err := s.articles.Update(id, func(a *model.NewsArticle) error {
		if request.Title != nil {
			title := strings.TrimSpace(*request.Title)
			if title == "" {
				return apierror.BadRequest("title cannot be empty", "title")
			}
			a.Title = title
		}
		if request.Status != nil {
			status := normalizeOption(*request.Status)
			if !validArticleStatus(status) {
				return apierror.BadRequest("status must be one of: draft|published|archived", "status")
			}
			a.Status = status
		}
		if request.Content != nil {
			a.Content = *request.Content
		}
		if request.MarkdownContent != nil {
			a.MarkdownContent = *request.MarkdownContent
		}
		if request.Excerpt != nil {
			a.Excerpt = *request.Excerpt
		}
		if request.Author != nil {
			a.Author = *request.Author
		}
		if request.Category != nil {
			a.Category = *request.Category
		}
		if request.Tags != nil {
			a.Tags = util.UniqueStrings(*request.Tags)
		}
		if request.Featured != nil {
			a.Featured = *request.Featured
		}
		return nil
	})
	if err != nil {
		return model.NewsArticle{}, notFoundOr(err, "article not found", id)
	}

	publish(s.bus, event.TypeRecordUpdated, topicNews, RecordPayload{ID: id, Record: updated})
	return updated, nil
}

func (s *NewsService) Delete(id string) error {
	if err := s.articles.Delete(id); err != nil {
		return notFoundOr(err, "article not found", id)
	}

	publish(s.bus, event.TypeRecordDeleted, topicNews, RecordPayload{ID: id})
	return nil
}

func (s *NewsService) Select(id string) (model.NewsArticle, error) {
	if err := s.articles.Select(id); err != nil {
		return model.NewsArticle{}, notFoundOr(err, "article not found", id)
	}
	return s.Get(id)
}

func (s *NewsService) Selected() (model.NewsArticle, bool) {
	return s.articles.Selected()
}

// Stats counts over the whole collection, not the filtered view.
func (s *NewsService) Stats() model.NewsStats {
	var stats model.NewsStats
	for _, a := range s.articles.List() {
		stats.Total++
		switch a.Status {
		case model.StatusDraft:
			stats.Drafts++
		case model.StatusPublished:
			stats.Published++
		case model.StatusArchived:
			stats.Archived++
		}
	}
	return stats
}

func (s *NewsService) Render(id string) (model.RenderedMarkdown, error) {
	article, err := s.Get(id)
	if err != nil {
		return model.RenderedMarkdown{}, err
	}
	return model.RenderedMarkdown{HTML: markdown.Render(article.MarkdownContent)}, nil
}

func (s *NewsService) Preview(source string) model.RenderedMarkdown {
	return model.RenderedMarkdown{HTML: markdown.Render(source)}
}

func (s *NewsService) Len() int {
	return s.articles.Len()
}

func articleFilter(query model.NewsQuery) func(model.NewsArticle) bool {
	search := strings.TrimSpace(query.Search)
	return func(a model.NewsArticle) bool {
		if !matchesOption(query.Status, a.Status) || !matchesOption(query.Category, a.Category) {
			return false
		}
		return util.ContainsFold(a.Title, search) || util.ContainsFold(a.Excerpt, search)
	}
}

func validArticleStatus(status string) bool {
	return oneOf(status, model.StatusDraft, model.StatusPublished, model.StatusArchived)
}

func defaultExcerpt(source string) string {
	runes := []rune(source)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + excerptEllipse
}

func cloneArticle(a model.NewsArticle) model.NewsArticle {
	a.Tags = append([]string{}, a.Tags...)
	return a
}
