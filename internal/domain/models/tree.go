package models

// Tree represents the full hierarchy: root folders with nested subtrees plus
// the documents that sit at the hierarchy root.
type Tree struct {
	Folders   []*FolderNode      `json:"folders"`
	Documents []DocumentResource `json:"documents"`
}

// FolderNode is a folder projection extended with its materialized subtree.
type FolderNode struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ParentID  *string            `json:"parent_id"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
	Type      string             `json:"type"`
	Children  []*FolderNode      `json:"children"` // Pointers for proper nesting
	Documents []DocumentResource `json:"documents"`
}

// Node projects the folder to a tree node with empty child slices.
func (f *Folder) Node() *FolderNode {
	return &FolderNode{
		ID:        f.ID,
		Name:      f.Name,
		ParentID:  f.ParentID,
		CreatedAt: FormatTimestamp(f.CreatedAt),
		UpdatedAt: FormatTimestamp(f.UpdatedAt),
		Type:      "folder",
		Children:  []*FolderNode{},
		Documents: []DocumentResource{},
	}
}
