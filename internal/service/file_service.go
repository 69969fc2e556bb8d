package service

import (
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/repository"
	"go-admin-panel/internal/util"
	"go-admin-panel/pkg/apierror"
)

const topicFiles = "files"

// FileService is the in-memory file browser. Nothing touches the disk.
type FileService struct {
	files *repository.Collection[model.FileItem]
	bus   event.Bus

	mu   sync.RWMutex
	path []string
}

func NewFileService(seed []model.FileItem, bus event.Bus) *FileService {
	items := make([]model.FileItem, 0, len(seed))
	for _, item := range seed {
		items = append(items, withCategory(item))
	}

	return &FileService{
		files: repository.NewCollection(func(f model.FileItem) string { return f.ID }, cloneFile, items),
		bus:   bus,
	}
}

func (s *FileService) List(query model.FileQuery) ([]model.FileItem, model.Meta) {
	items := s.files.Filter(func(f model.FileItem) bool {
		return util.ContainsFold(f.Name, strings.TrimSpace(query.Search)) && matchesOption(query.Type, f.Type)
	})
	return model.Paginate(items, query.Page, query.Limit)
}

func (s *FileService) Get(id string) (model.FileItem, error) {
	item, err := s.files.Get(id)
	if err != nil {
		return model.FileItem{}, apierror.NotFound("file not found", id)
	}
	return item, nil
}

func (s *FileService) Create(request model.CreateFileRequest) (model.FileItem, error) {
	name, err := util.SanitizeName(request.Name)
	if err != nil {
		return model.FileItem{}, err
	}

	kind := strings.ToLower(strings.TrimSpace(request.Type))
	if kind == "" {
		kind = model.FileTypeFile
	}
	if kind != model.FileTypeFile && kind != model.FileTypeFolder {
		return model.FileItem{}, apierror.BadRequest("type must be one of: file|folder", "type")
	}

	item := model.FileItem{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     kind,
		Modified: justNow,
	}
	if kind == model.FileTypeFile {
		item.Size = stringPtr(humanSize(""))
		item.Extension = stringPtr(util.Extension(name))
		item.Content = stringPtr("")
	}
	item = withCategory(item)

	if err := s.files.Add(item); err != nil {
		return model.FileItem{}, err
	}

	publish(s.bus, event.TypeRecordCreated, topicFiles, RecordPayload{ID: item.ID, Record: item})
	return item, nil
}

// Update merges a name and/or content edit. Content edits only apply to files
// and refresh the size. An empty patch changes nothing.
func (s *FileService) Update(id string, request model.UpdateFileRequest) (model.FileItem, error) {
	var name string
	if request.Name != nil {
		cleaned, err := util.SanitizeName(*request.Name)
		if err != nil {
			return model.FileItem{}, err
		}
		name = cleaned
	}

	updated, err := s.files.Update(id, func(item *model.FileItem) error {
		if request.Content != nil {
			if item.Type != model.FileTypeFile {
				return apierror.BadRequest("folders have no content", "content")
			}
			item.Content = stringPtr(*request.Content)
			item.Size = stringPtr(humanSize(*request.Content))
		}
		if request.Name != nil {
			item.Name = name
			if item.Type == model.FileTypeFile {
				item.Extension = stringPtr(util.Extension(name))
			}
		}
		if request.Name != nil || request.Content != nil {
			item.Modified = justNow
		}
		*item = withCategory(*item)
		return nil
	})
	if err != nil {
		return model.FileItem{}, notFoundOr(err, "file not found", id)
	}

	publish(s.bus, event.TypeRecordUpdated, topicFiles, RecordPayload{ID: id, Record: updated})
	return updated, nil
}

func (s *FileService) Delete(id string) error {
	if err := s.files.Delete(id); err != nil {
		return notFoundOr(err, "file not found", id)
	}

	publish(s.bus, event.TypeRecordDeleted, topicFiles, RecordPayload{ID: id})
	return nil
}

func (s *FileService) Select(id string) (model.BrowserState, error) {
	if err := s.files.Select(id); err != nil {
		return model.BrowserState{}, notFoundOr(err, "file not found", id)
	}
	return s.State(), nil
}

// Open descends into a folder or selects a file.
func (s *FileService) Open(id string) (model.BrowserState, error) {
	item, err := s.Get(id)
	if err != nil {
		return model.BrowserState{}, err
	}

	if item.Type == model.FileTypeFolder {
		s.mu.Lock()
		s.path = append(s.path, item.Name)
		s.mu.Unlock()
		return s.State(), nil
	}

	return s.Select(id)
}

// Home resets the browsing path and clears the selection.
func (s *FileService) Home() model.BrowserState {
	s.mu.Lock()
	s.path = nil
	s.mu.Unlock()

	_ = s.files.Select("")
	return s.State()
}

func (s *FileService) State() model.BrowserState {
	s.mu.RLock()
	current := "/" + strings.Join(s.path, "/")
	s.mu.RUnlock()

	state := model.BrowserState{CurrentPath: current}
	if selected, ok := s.files.Selected(); ok {
		state.Selected = &selected
	}
	return state
}

func (s *FileService) Len() int {
	return s.files.Len()
}

func humanSize(content string) string {
	return humanize.Bytes(uint64(len(content)))
}

func withCategory(item model.FileItem) model.FileItem {
	ext := ""
	if item.Extension != nil {
		ext = *item.Extension
	}
	item.Category = util.FileCategory(item.Type == model.FileTypeFolder, ext)
	return item
}

func cloneFile(item model.FileItem) model.FileItem {
	item.Size = cloneStringPtr(item.Size)
	item.Extension = cloneStringPtr(item.Extension)
	item.Content = cloneStringPtr(item.Content)
	return item
}
