package model

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleBanned    = "banned"

	UserActive    = "active"
	UserInactive  = "inactive"
	UserSuspended = "suspended"
)

type UserData struct {
	ID           string   `json:"id" yaml:"id"`
	Username     string   `json:"username" yaml:"username"`
	Email        string   `json:"email" yaml:"email"`
	FullName     string   `json:"fullName" yaml:"fullName"`
	Role         string   `json:"role" yaml:"role"`
	Status       string   `json:"status" yaml:"status"`
	JoinDate     string   `json:"joinDate" yaml:"joinDate"`
	LastActivity string   `json:"lastActivity" yaml:"lastActivity"`
	Posts        int      `json:"posts" yaml:"posts"`
	Reputation   int      `json:"reputation" yaml:"reputation"`
	Permissions  []string `json:"permissions" yaml:"permissions"`
}

type CreateUserRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	Role        string   `json:"role"`
	Status      string   `json:"status"`
	Permissions []string `json:"permissions"`
}

type UpdateUserRequest struct {
	Username    *string   `json:"username"`
	Email       *string   `json:"email"`
	FullName    *string   `json:"fullName"`
	Role        *string   `json:"role"`
	Status      *string   `json:"status"`
	Permissions *[]string `json:"permissions"`
}

type UserQuery struct {
	Search string
	Role   string
	Status string
	Page   int
	Limit  int
}

type UserStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Admins int `json:"admins"`
	Banned int `json:"banned"`
}
