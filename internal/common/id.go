package common

import (
	"github.com/google/uuid"
)

// NewRecordID generates a unique analysis record ID.
// Format: rec_<uuid>
func NewRecordID() string {
	return "rec_" + uuid.New().String()
}
