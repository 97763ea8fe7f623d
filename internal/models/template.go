package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateMeta is a row of the template catalog: one entry per supported
// slide template, used by the authoring UI to browse available layouts.
type TemplateMeta struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Category    string    `json:"category"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
