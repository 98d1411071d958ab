package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleManager    UserRole = "MANAGER"
	RoleSupervisor UserRole = "SUPERVISOR"
	RoleOperator   UserRole = "OPERATOR"
	RoleViewer     UserRole = "VIEWER"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupervisor, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// User is the acting-identity record referenced by orders, movements and
// audit entries. Credential data lives with the auth collaborator, not here.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	Email      string    `gorm:"type:varchar(200);unique;not null" json:"email"`
	Role       UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	Department string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
