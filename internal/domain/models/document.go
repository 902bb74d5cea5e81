package models

import (
	"time"
)

type Document struct {
	ID        string    `json:"id" db:"id"`
	FolderID  *string   `json:"folder_id" db:"folder_id"` // NULL = root level
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DocumentResource is the flat transport projection of a Document.
type DocumentResource struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	FolderID  *string `json:"folder_id"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Type      string  `json:"type"`
}

// Resource projects the document to its transport shape.
func (d *Document) Resource() DocumentResource {
	return DocumentResource{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		FolderID:  d.FolderID,
		CreatedAt: FormatTimestamp(d.CreatedAt),
		UpdatedAt: FormatTimestamp(d.UpdatedAt),
		Type:      "document",
	}
}

// DocumentResources projects a slice of documents, preserving order.
func DocumentResources(docs []Document) []DocumentResource {
	out := make([]DocumentResource, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].Resource())
	}
	return out
}
