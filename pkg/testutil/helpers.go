// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/listing"
)

// FindSection finds the section of a category in a detail view.
// Returns a pointer to the section if found, nil otherwise.
func FindSection(v detail.View, category listing.Category) *detail.Section {
	for i := range v.Sections {
		if v.Sections[i].Category == category {
			return &v.Sections[i]
		}
	}
	return nil
}

// FindEntry finds an entry by label.
func FindEntry(entries []detail.Entry, label string) *detail.Entry {
	for i := range entries {
		if entries[i].Label == label {
			return &entries[i]
		}
	}
	return nil
}

// FindDocument finds a document by slot name.
func FindDocument(docs []detail.Document, slot string) *detail.Document {
	for i := range docs {
		if docs[i].Slot == slot {
			return &docs[i]
		}
	}
	return nil
}
