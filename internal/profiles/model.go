package profiles

import (
	"time"

	"resume-parser/internal/parse"
)

// Profile is one persisted pipeline run against a stored document.
type Profile struct {
	ID         string       `json:"profileId"`
	UserID     string       `json:"-"`
	DocumentID string       `json:"documentId"`
	FileType   string       `json:"fileType"`
	Result     parse.Result `json:"result"`
	Warnings   int          `json:"warningCount"`
	CreatedAt  time.Time    `json:"createdAt"`
}
