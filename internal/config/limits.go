package config

// Name length limits enforced at validation time
const (
	MaxFolderNameLength    = 200
	MaxDocumentTitleLength = 200
)
