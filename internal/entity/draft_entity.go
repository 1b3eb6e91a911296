package entity

import (
	"time"

	"ai-lifecoach-be/pkg/ingest"
)

// Draft is the wizard state between parsing a raw reflection and confirming
// the submission. It lives only in the in-memory draft store, never remotely.
type Draft struct {
	Id          string
	Record      *ingest.Record
	KnownThemes []string
	NewThemes   []string
	CreatedAt   time.Time
}
