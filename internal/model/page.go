package model

import (
	"github.com/google/uuid"
)

// Page is a single page of a multi-page form.
type Page struct {
	// ID is the unique identifier, stable for the page's lifetime.
	ID string `json:"id"`
	// Name is the label shown on the page tab.
	Name string `json:"name"`
	// Active marks the page currently being edited.
	Active bool `json:"active"`
	// Order is the zero-based position in the collection.
	Order int `json:"order"`
}

// NewPageID returns a fresh random page id.
func NewPageID() string {
	return uuid.NewString()
}

// SeedPages returns the pages a new form starts with.
func SeedPages() Pages {
	return Pages{
		{ID: "info", Name: "Info", Active: true, Order: 0},
		{ID: "details", Name: "Details", Order: 1},
		{ID: "other", Name: "Other", Order: 2},
		{ID: "ending", Name: "Ending", Order: 3},
	}
}

// DisplayName returns the name to display in the UI.
// Falls back to a placeholder if name is blank.
func (p Page) DisplayName() string {
	for _, r := range p.Name {
		if r != ' ' && r != '\t' {
			return p.Name
		}
	}
	return "Untitled"
}
