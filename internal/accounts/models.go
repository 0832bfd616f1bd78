package accounts

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when a caller identity has no account record.
var ErrAccountNotFound = errors.New("account not found")

type Account struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'BUYER'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleBuyer), string(RoleOperator):
		return true
	default:
		return false
	}
}

// TableName sets the table name for Account
func (Account) TableName() string {
	return "accounts"
}
