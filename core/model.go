package core

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// BaseModel is embedded in every persisted entity
// deleted_at == 0 means the entity is alive
type BaseModel struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(32)"`
	CreatedAt int64  `json:"created_at" gorm:"autoCreateTime;not null;index"`
	UpdatedAt int64  `json:"updated_at" gorm:"autoUpdateTime;not null"`
	DeletedAt int64  `json:"deleted_at" gorm:"not null;default:0;index"`
	Version   uint64 `json:"version" gorm:"not null;default:0"`
}

func NewBaseModel(id string) BaseModel {
	now := time.Now().Unix()
	return BaseModel{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Base exposes the embedded model so that generic repositories can reach it
func (b *BaseModel) Base() *BaseModel {
	return b
}

func (b BaseModel) GetID() string {
	return b.ID
}

// Delete marks the entity as soft-deleted
func (b *BaseModel) Delete() {
	b.DeletedAt = time.Now().Unix()
}

func (b BaseModel) IsDeleted() bool {
	return b.DeletedAt != 0
}

// RouteItem is a single permission granted by a role
type RouteItem struct {
	Module      string `json:"module" validate:"required"`
	Path        string `json:"path" validate:"required"`
	Description string `json:"description"`
}

// Role is a named set of permissions
// mutable
type Role struct {
	BaseModel   `gorm:"embedded"`
	Name        string                         `json:"name" gorm:"type:text;uniqueIndex"`
	Permissions datatypes.JSONSlice[RouteItem] `json:"permissions" gorm:"type:jsonb"`
}

func NewRole(id, name string, permissions []RouteItem) Role {
	return Role{
		BaseModel:   NewBaseModel(id),
		Name:        name,
		Permissions: datatypes.JSONSlice[RouteItem](permissions),
	}
}

// Policies flattens the permissions into (role name, path) facts
func (r Role) Policies() []PolicyFact {
	out := make([]PolicyFact, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		out = append(out, PolicyFact{Subject: r.Name, Action: p.Path})
	}
	return out
}

// Secret holds the login account and the bcrypt hash of its password
type Secret struct {
	Account  string `json:"account" gorm:"type:text;uniqueIndex"`
	Password string `json:"-" gorm:"type:text"`
}

func NewSecret(account, password string) (Secret, error) {
	if password == "" {
		return Secret{}, NewErrorInvalidArgument("password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Secret{}, err
	}

	return Secret{Account: account, Password: string(hashed)}, nil
}

func (s *Secret) ChangePassword(password string) error {
	updated, err := NewSecret(s.Account, password)
	if err != nil {
		return err
	}
	s.Password = updated.Password
	return nil
}

// IsMatch reports whether password matches the stored hash
func (s Secret) IsMatch(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(password)) == nil
}

// User is an account that inherits the permissions of its role
// mutable
type User struct {
	BaseModel `gorm:"embedded"`
	Secret    Secret `json:"secret" gorm:"embedded;embeddedPrefix:secret_"`
	Name      string `json:"name" gorm:"type:text;uniqueIndex"`
	Age       uint8  `json:"age"`
	Avatar    string `json:"avatar" gorm:"type:text"`
	IsActive  bool   `json:"is_active" gorm:"not null"`
	RoleName  string `json:"role_name" gorm:"type:text;index"`
}

// Account is the subject used for role assignments
func (u User) Account() string {
	return u.Name
}

func (u User) GetRoleName() string {
	return u.RoleName
}

// Identity is what a request needs to know about its user
type Identity struct {
	ID       string `json:"id"`
	Account  string `json:"account"`
	IsActive bool   `json:"is_active"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Account: u.Account(), IsActive: u.IsActive}
}

// PolicyFact allows Subject to perform Action
type PolicyFact struct {
	Subject string `json:"subject"`
	Action  string `json:"action"`
}

// RoleAssignment binds an account to a role
type RoleAssignment struct {
	User string `json:"user"`
	Role string `json:"role"`
}

// Collection is a page of entities
type Collection[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
