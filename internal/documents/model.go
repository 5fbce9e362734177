package documents

import "time"

// Document represents an uploaded résumé owned by a user.
type Document struct {
	ID               string
	UserID           string
	FileName         string
	OriginalFilename string
	MimeType         string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	Checksum         string
	CreatedAt        time.Time
}
