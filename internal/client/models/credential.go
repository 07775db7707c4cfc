// Package models defines the credential record and its persisted envelope.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// Credential is one service/login/password tuple. Records are immutable
// once created; the only mutation is deletion.
type Credential struct {
	// Id is an opaque identifier assigned at creation and never reused.
	Id string `json:"id"`

	// Service is the display name of the site or app; may be empty.
	Service string `json:"service"`

	// Login is the account identifier.
	Login string `json:"login"`

	// Password is stored in plain text.
	Password string `json:"password"`

	// CreatedAt is the creation time in UTC, serialized as RFC 3339.
	CreatedAt time.Time `json:"createdAt"`
}

// FormatVersion is the version written by Encode.
const FormatVersion = 1

// Document is the value stored under the storage key.
type Document struct {
	Version int          `json:"version"`
	Records []Credential `json:"records"`
}

// Encode serializes records as a current-version Document.
func Encode(records []Credential) ([]byte, error) {
	if records == nil {
		records = []Credential{}
	}
	return json.Marshal(Document{Version: FormatVersion, Records: records})
}

// Decode parses a stored value. A bare JSON array is the unversioned legacy
// layout and decodes as version 0. Malformed input wraps common.ErrCorruptData;
// a version newer than FormatVersion wraps common.ErrUnsupportedVersion.
func Decode(b []byte) (Document, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("%w: empty value", common.ErrCorruptData)
	}

	var doc Document
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Records); err != nil {
			return Document{}, fmt.Errorf("%w: %v", common.ErrCorruptData, err)
		}
	} else {
		var raw struct {
			Version *int         `json:"version"`
			Records []Credential `json:"records"`
		}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return Document{}, fmt.Errorf("%w: %v", common.ErrCorruptData, err)
		}
		if raw.Version == nil {
			return Document{}, fmt.Errorf("%w: missing version", common.ErrCorruptData)
		}
		if *raw.Version > FormatVersion || *raw.Version < 1 {
			return Document{}, fmt.Errorf("%w: %d", common.ErrUnsupportedVersion, *raw.Version)
		}
		doc.Version = *raw.Version
		doc.Records = raw.Records
	}

	seen := make(map[string]struct{}, len(doc.Records))
	for i, r := range doc.Records {
		if r.Id == "" {
			return Document{}, fmt.Errorf("%w: record %d has no id", common.ErrCorruptData, i)
		}
		if _, dup := seen[r.Id]; dup {
			return Document{}, fmt.Errorf("%w: duplicate id %q", common.ErrCorruptData, r.Id)
		}
		seen[r.Id] = struct{}{}
	}
	if doc.Records == nil {
		doc.Records = []Credential{}
	}

	return doc, nil
}
