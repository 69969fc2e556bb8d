package service

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/repository"
	"go-admin-panel/internal/util"
	"go-admin-panel/pkg/apierror"
)

const topicUsers = "users"

// UserService manages panel user records. These are display records only;
// there are no credentials.
type UserService struct {
	users    *repository.Collection[model.UserData]
	bus      event.Bus
	now      func() time.Time
	validate *validator.Validate
}

func NewUserService(seed []model.UserData, bus event.Bus, clock func() time.Time) *UserService {
	return &UserService{
		users:    repository.NewCollection(func(u model.UserData) string { return u.ID }, cloneUser, seed),
		bus:      bus,
		now:      clockOrNow(clock),
		validate: validator.New(),
	}
}

func (s *UserService) List(query model.UserQuery) ([]model.UserData, model.Meta) {
	search := strings.TrimSpace(query.Search)
	items := s.users.Filter(func(u model.UserData) bool {
		if !matchesOption(query.Role, u.Role) || !matchesOption(query.Status, u.Status) {
			return false
		}
		return util.ContainsFold(u.Username, search) ||
			util.ContainsFold(u.Email, search) ||
			util.ContainsFold(u.FullName, search)
	})
	return model.Paginate(items, query.Page, query.Limit)
}

func (s *UserService) Get(id string) (model.UserData, error) {
	user, err := s.users.Get(id)
	if err != nil {
		return model.UserData{}, apierror.NotFound("user not found", id)
	}
	return user, nil
}

func (s *UserService) Create(request model.CreateUserRequest) (model.UserData, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" {
		return model.UserData{}, apierror.BadRequest("username is required", "username")
	}

	email, err := s.checkEmail(request.Email)
	if err != nil {
		return model.UserData{}, err
	}

	role := normalizeOption(request.Role)
	if role == "" {
		role = model.RoleUser
	}
	status := normalizeOption(request.Status)
	if status == "" {
		status = model.UserActive
	}
	if err := validateRoleStatus(role, status); err != nil {
		return model.UserData{}, err
	}

	fullName := strings.TrimSpace(request.FullName)
	if fullName == "" {
		fullName = username
	}

	permissions := []string{"read"}
	if request.Permissions != nil {
		permissions = util.UniqueStrings(request.Permissions)
	}

	user := model.UserData{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		Status:       status,
		JoinDate:     s.now().Format(dateOnly),
		LastActivity: justNow,
		Permissions:  permissions,
	}

	if err := s.users.Add(user); err != nil {
		return model.UserData{}, err
	}

	publish(s.bus, event.TypeRecordCreated, topicUsers, RecordPayload{ID: user.ID, Record: user})
	return user, nil
}

func (s *UserService) Update(id string, request model.UpdateUserRequest) (model.UserData, error) {
	updated, err := s.users.Update(id, func(u *model.UserData) error {
		if request.Username != nil {
			username := strings.TrimSpace(*request.Username)
			if username == "" {
				return apierror.BadRequest("username cannot be empty", "username")
			}
			u.Username = username
		}
		if request.Email != nil {
			email, err := s.checkEmail(*request.Email)
			if err != nil {
				return err
			}
			u.Email = email
		}
		if request.FullName != nil {
			u.FullName = *request.FullName
		}
		if request.Role != nil {
			u.Role = normalizeOption(*request.Role)
		}
		if request.Status != nil {
			u.Status = normalizeOption(*request.Status)
		}
		if request.Permissions != nil {
			u.Permissions = util.UniqueStrings(*request.Permissions)
		}
		return validateRoleStatus(u.Role, u.Status)
	})
	if err != nil {
		return model.UserData{}, notFoundOr(err, "user not found", id)
	}

	publish(s.bus, event.TypeRecordUpdated, topicUsers, RecordPayload{ID: id, Record: updated})
	return updated, nil
}

func (s *UserService) Delete(id string) error {
	if err := s.users.Delete(id); err != nil {
		return notFoundOr(err, "user not found", id)
	}

	publish(s.bus, event.TypeRecordDeleted, topicUsers, RecordPayload{ID: id})
	return nil
}

func (s *UserService) Select(id string) (model.UserData, error) {
	if err := s.users.Select(id); err != nil {
		return model.UserData{}, notFoundOr(err, "user not found", id)
	}
	return s.Get(id)
}

func (s *UserService) Selected() (model.UserData, bool) {
	return s.users.Selected()
}

// Stats counts "banned" by role; a suspended status alone does not count.
func (s *UserService) Stats() model.UserStats {
	var stats model.UserStats
	for _, u := range s.users.List() {
		stats.Total++
		if u.Status == model.UserActive {
			stats.Active++
		}
		switch u.Role {
		case model.RoleAdmin:
			stats.Admins++
		case model.RoleBanned:
			stats.Banned++
		}
	}
	return stats
}

func (s *UserService) Len() int {
	return s.users.Len()
}

// checkEmail accepts a bare address only; display-name forms are rejected.
func (s *UserService) checkEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", apierror.BadRequest("email is required", "email")
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", apierror.BadRequest("email is invalid", "email")
	}
	return email, nil
}

func validateRoleStatus(role string, status string) error {
	if !oneOf(role, model.RoleAdmin, model.RoleModerator, model.RoleUser, model.RoleBanned) {
		return apierror.BadRequest("role must be one of: admin|moderator|user|banned", "role")
	}
	if !oneOf(status, model.UserActive, model.UserInactive, model.UserSuspended) {
		return apierror.BadRequest("status must be one of: active|inactive|suspended", "status")
	}
	return nil
}

func cloneUser(u model.UserData) model.UserData {
	u.Permissions = append([]string{}, u.Permissions...)
	return u
}
