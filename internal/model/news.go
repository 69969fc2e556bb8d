package model

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type NewsArticle struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Content         string   `json:"content" yaml:"content"`
	MarkdownContent string   `json:"markdownContent" yaml:"markdownContent"`
	Excerpt         string   `json:"excerpt" yaml:"excerpt"`
	Author          string   `json:"author" yaml:"author"`
	Category        string   `json:"category" yaml:"category"`
	Status          string   `json:"status" yaml:"status"`
	PublishDate     string   `json:"publishDate" yaml:"publishDate"`
	Views           int      `json:"views" yaml:"views"`
	Likes           int      `json:"likes" yaml:"likes"`
	Comments        int      `json:"comments" yaml:"comments"`
	Tags            []string `json:"tags" yaml:"tags"`
	Featured        bool     `json:"featured" yaml:"featured"`
}

type CreateArticleRequest struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	MarkdownContent string   `json:"markdownContent"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	Status          string   `json:"status"`
	Tags            []string `json:"tags"`
	Featured        bool     `json:"featured"`
}

type UpdateArticleRequest struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	MarkdownContent *string   `json:"markdownContent"`
	Excerpt         *string   `json:"excerpt"`
	Author          *string   `json:"author"`
	Category        *string   `json:"category"`
	Status          *string   `json:"status"`
	Tags            *[]string `json:"tags"`
	Featured        *bool     `json:"featured"`
}

type NewsQuery struct {
	Search   string
	Status   string
	Category string
	Page     int
	Limit    int
}

type NewsStats struct {
	Total     int `json:"total"`
	Drafts    int `json:"drafts"`
	Published int `json:"published"`
	Archived  int `json:"archived"`
}

type RenderedMarkdown struct {
	HTML string `json:"html"`
}

type PreviewRequest struct {
	Markdown string `json:"markdown"`
}
