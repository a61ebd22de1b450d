package entity

import (
	"time"

	"volunteerhub/core/entity"
)

// Admin is an NGO administrator account
type Admin struct {
	NGOName         string     `db:"ngo_name" json:"ngo_name"`
	NGOCode         string     `db:"ngo_code" json:"ngo_code"`
	Email           string     `db:"email" json:"email"`
	Password        string     `db:"password" json:"-"`
	ContactNumber   *string    `db:"contact_number" json:"contact_number,omitempty"`
	Location        *string    `db:"location" json:"location,omitempty"`
	GoogleID        *string    `db:"google_id" json:"-"`
	EmailVerifiedAt *time.Time `db:"email_verified_at" json:"email_verified_at,omitempty"`
	entity.BaseEntity
}
