package core

const (
	RequesterIdCtxKey      = "rg-requesterId"
	RequesterAccountCtxKey = "rg-requesterAccount"
	RequesterRoleCtxKey    = "rg-requesterRole"
	RequesterTokenCtxKey   = "rg-requesterToken"
)

const (
	RoleCollection = "roles"
	UserCollection = "users"
)

// TokenPayload is the content carried by a signed token
type TokenPayload struct {
	ID      string `json:"id"`
	Account string `json:"account"`
	Role    string `json:"role"`
	JTI     string `json:"jti,omitempty"`
}

// UserInput is the mutable part of a user
type UserInput struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name" validate:"required"`
	Age      uint8  `json:"age"`
	Avatar   string `json:"avatar"`
	IsActive *bool  `json:"is_active,omitempty"`
	RoleName string `json:"role_name" validate:"required"`
}
