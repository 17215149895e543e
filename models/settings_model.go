package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReturnPercentage applies when no settings row exists yet.
const DefaultReturnPercentage = 2.00

// Settings is the singleton configuration row. Zero or one row exists; the
// first update creates it.
type Settings struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DefaultReturnPercentage float64   `gorm:"type:numeric(5,2);not null;default:2.00" json:"default_return_percentage"`
	AdminEmail              *string   `gorm:"size:255" json:"admin_email"`
	AdminContactInfo        *string   `gorm:"type:text" json:"admin_contact_info"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
