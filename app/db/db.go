package db

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when object not found
var ErrNotFound error = errors.New("not found")

// GenerateID generates new uuid and encodes it to base64
func GenerateID() string {
	id := [16]byte(uuid.New())
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// Storage defines methods provided by report archives
type Storage interface {
	// SaveReport stores report, replacing previous one for the same word
	SaveReport(Record) error
	// GetReport returns latest report for word
	GetReport(string) (Record, error)
}

// Record holds a single archived report
type Record struct {
	ID      string
	Word    string
	Source  string
	Target  string
	Text    string
	Created time.Time
}

// NewRecord creates record with generated ID and current time
func NewRecord(word, source, target, text string) Record {
	return Record{
		ID:      GenerateID(),
		Word:    word,
		Source:  source,
		Target:  target,
		Text:    text,
		Created: time.Now().UTC(),
	}
}
