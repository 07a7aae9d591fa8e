// Package catalog owns the donation-project records and their on-disk JSON
// representation. The store is the single writer; every mutation rewrites the
// whole document before returning.
package catalog

import (
	"errors"

	"github.com/pawfund/charitybot/donation/i18n"
)

var (
	// ErrDuplicateKey is returned when adding a project under an existing key.
	ErrDuplicateKey = errors.New("catalog: project key already exists")
	// ErrNotFound is returned when deleting a project that is not in the catalog.
	ErrNotFound = errors.New("catalog: project not found")
)

// LocalizedText holds one string per supported locale. Both fields are always
// populated for persisted records.
type LocalizedText struct {
	EN string `json:"en"`
	UA string `json:"ua"`
}

// In returns the text for the given locale, defaulting to English.
func (t LocalizedText) In(lang i18n.Language) string {
	if lang == i18n.UA {
		return t.UA
	}
	return t.EN
}

// Project is a single donation project offered to visitors.
type Project struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	// Requisites holds free-text payment instructions, locale-independent.
	Requisites string `json:"requisites"`
}
