package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// Preferences is the fixed-shape settings block inside ExtraDocument.
type Preferences struct {
	Theme      string `json:"theme"`
	Language   string `json:"language"`
	Newsletter bool   `json:"newsletter"`
}

// SocialMedia holds the well-known handle slots inside ExtraDocument.
type SocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// ExtraDocument is the structured attribute bag persisted on user_details.
// It occupies a single text column holding the JSON produced by Value and
// consumed by Scan.
type ExtraDocument struct {
	Interests   []string    `json:"interests,omitempty"`
	Preferences Preferences `json:"preferences"`
	SocialMedia SocialMedia `json:"social_media"`
}

// IsZero reports whether the document carries no data.
func (d ExtraDocument) IsZero() bool {
	return len(d.Interests) == 0 && d.Preferences == (Preferences{}) && d.SocialMedia == (SocialMedia{})
}

// Value serializes the document for storage.
func (d ExtraDocument) Value() (driver.Value, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan restores a document from its column value. Absent or malformed
// content yields the empty document: a profile read must not fail because a
// legacy row carries garbage in this column.
func (d *ExtraDocument) Scan(value interface{}) error {
	*d = ExtraDocument{}
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("extra document: unsupported scan type %T", value)
	}

	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, d); err != nil {
		*d = ExtraDocument{}
	}
	return nil
}
