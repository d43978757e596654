package models

import "time"

// Model is embedded by every catalog table. Rows are hard-deleted so unique
// columns and cascades behave like plain SQL.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the primary key.
func (m Model) GetID() uint { return m.ID }

// Validator is implemented by models that check their own fields before a write.
type Validator interface {
	Validate() error
}

// UniqueField is a column that must not repeat across rows.
type UniqueField struct {
	Column string
	Value  any
}

// UniqueFielder lists the unique columns of a model, so duplicates can be
// reported per field instead of as a bare driver error.
type UniqueFielder interface {
	UniqueFields() []UniqueField
}

// Reference is a column in another table whose rows keep a model from being
// deleted (ON DELETE RESTRICT).
type Reference struct {
	Table  string
	Column string
}

// Referencer lists the restricting references to a model, so a blocked delete
// is reported as a conflict on every driver.
type Referencer interface {
	RestrictedBy() []Reference
}
