package model

const (
	FileTypeFile   = "file"
	FileTypeFolder = "folder"
)

type FileItem struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Type      string  `json:"type" yaml:"type"`
	Size      *string `json:"size,omitempty" yaml:"size,omitempty"`
	Extension *string `json:"extension,omitempty" yaml:"extension,omitempty"`
	Content   *string `json:"content,omitempty" yaml:"content,omitempty"`
	Modified  string  `json:"modified" yaml:"modified"`
	Category  string  `json:"category" yaml:"-"`
}

type CreateFileRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateFileRequest carries a partial edit; nil fields stay untouched.
type UpdateFileRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

type FileQuery struct {
	Search string
	Type   string
	Page   int
	Limit  int
}

type BrowserState struct {
	CurrentPath string    `json:"currentPath"`
	Selected    *FileItem `json:"selected,omitempty"`
}
