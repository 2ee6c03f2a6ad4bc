package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DeliverableType selects which prompt template and output structure a
// generation run uses. It is fixed at project creation and never changes.
type DeliverableType string

const (
	TypePersona   DeliverableType = "persona"
	TypeJourney   DeliverableType = "journey"
	TypeBlueprint DeliverableType = "blueprint"
)

// ParseDeliverableType validates a raw string against the closed enum.
func ParseDeliverableType(s string) (DeliverableType, bool) {
	switch DeliverableType(s) {
	case TypePersona, TypeJourney, TypeBlueprint:
		return DeliverableType(s), true
	}
	return "", false
}

// Title returns the capitalized form used in default project names.
func (t DeliverableType) Title() string {
	switch t {
	case TypePersona:
		return "Persona"
	case TypeJourney:
		return "Journey"
	case TypeBlueprint:
		return "Blueprint"
	}
	return string(t)
}

// Project is a named container for generated deliverables. The deliverable
// type is immutable after creation; only the name can change.
type Project struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	DeliverableType DeliverableType `gorm:"type:varchar(16);not null" json:"deliverable_type"`
	CreatedAt       time.Time       `gorm:"index:idx_projects_created_at,sort:desc" json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Deliverables []Deliverable `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Deliverable is one generated document plus the inputs used to produce it.
// Deleting the owning project deletes its deliverables via the FK cascade.
type Deliverable struct {
	ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string                      `gorm:"type:uuid;not null;index:idx_deliverables_project_id" json:"project_id"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	ContextUsed *string                     `gorm:"type:text" json:"context_used"`
	FileNames   datatypes.JSONSlice[string] `json:"file_names"`
	CreatedAt   time.Time                   `json:"created_at"`
}
