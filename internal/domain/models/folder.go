package models

import (
	"time"
)

type Folder struct {
	ID        string    `json:"id" db:"id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FolderResource is the flat transport projection of a Folder.
type FolderResource struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parent_id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Type      string  `json:"type"`
}

// Resource projects the folder to its transport shape. Timestamps are
// rendered RFC 3339 UTC so lexical order matches chronological order.
func (f *Folder) Resource() FolderResource {
	return FolderResource{
		ID:        f.ID,
		Name:      f.Name,
		ParentID:  f.ParentID,
		CreatedAt: FormatTimestamp(f.CreatedAt),
		UpdatedAt: FormatTimestamp(f.UpdatedAt),
		Type:      "folder",
	}
}

// FormatTimestamp renders a timestamp in the fixed, sortable format used by
// every transport projection.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
