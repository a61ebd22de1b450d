package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"volunteerhub/core/entity"

	"github.com/google/uuid"
)

// Notification is an in-app notification for an NGO admin. Data carries
// type-specific context, e.g. the application and event IDs for a
// review-decision notification.
type Notification struct {
	AdminID uuid.UUID `db:"admin_id" json:"admin_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	Data    JSONB     `db:"data" json:"data"`
	IsRead  bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotifications = entity.Pagination[Notification]
