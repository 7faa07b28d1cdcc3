package model

import (
	"fmt"
	"slices"
)

// Pages is an ordered page collection. Every operation returns a new,
// renumbered collection and leaves the receiver untouched.
type Pages []Page

// IndexOf returns the position of the page with the given id, or -1.
func (p Pages) IndexOf(id string) int {
	for i := range p {
		if p[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the page with the given id.
func (p Pages) Find(id string) (Page, bool) {
	if i := p.IndexOf(id); i >= 0 {
		return p[i], true
	}
	return Page{}, false
}

// ActiveIndex returns the position of the active page, or -1.
func (p Pages) ActiveIndex() int {
	for i := range p {
		if p[i].Active {
			return i
		}
	}
	return -1
}

// Names returns the page names in order.
func (p Pages) Names() []string {
	names := make([]string, len(p))
	for i := range p {
		names[i] = p[i].Name
	}
	return names
}

// SetActive marks the page with the given id active and all others inactive.
// An unknown id leaves the collection unchanged.
func (p Pages) SetActive(id string) Pages {
	out := p.clone()
	if out.IndexOf(id) < 0 {
		return out
	}
	for i := range out {
		out[i].Active = out[i].ID == id
	}
	return out.renumber()
}

// Reorder removes the page at from and reinserts it at to, where to is
// interpreted against the collection after removal.
func (p Pages) Reorder(from, to int) (Pages, error) {
	if !p.inRange(from) || !p.inRange(to) {
		return p.clone(), fmt.Errorf("%w: reorder %d -> %d (len %d)", ErrIndexOutOfRange, from, to, len(p))
	}
	out := p.clone()
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return out.renumber(), nil
}

// InsertAfter adds a new inactive page named after the current length
// immediately to the right of index.
func (p Pages) InsertAfter(index int, id string) (Pages, error) {
	if !p.inRange(index) {
		return p.clone(), fmt.Errorf("%w: insert after %d (len %d)", ErrIndexOutOfRange, index, len(p))
	}
	if p.IndexOf(id) >= 0 {
		return p.clone(), fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	page := Page{
		ID:   id,
		Name: fmt.Sprintf(NewPageNameFormat, len(p)+1),
	}
	out := slices.Insert(p.clone(), index+1, page)
	return out.renumber(), nil
}

// Rename replaces the name of the page with the given id.
// An unknown id leaves the collection unchanged.
func (p Pages) Rename(id, name string) Pages {
	out := p.clone()
	if i := out.IndexOf(id); i >= 0 {
		out[i].Name = name
	}
	return out.renumber()
}

// Duplicate inserts an inactive copy of the page with the given id right
// after it. An unknown id leaves the collection unchanged.
func (p Pages) Duplicate(id, newID string) (Pages, error) {
	i := p.IndexOf(id)
	if i < 0 {
		return p.clone(), nil
	}
	if p.IndexOf(newID) >= 0 {
		return p.clone(), fmt.Errorf("%w: %s", ErrDuplicateID, newID)
	}
	page := Page{
		ID:   newID,
		Name: p[i].Name + CopySuffix,
	}
	out := slices.Insert(p.clone(), i+1, page)
	return out.renumber(), nil
}

// Delete removes the page with the given id. Deleting the active page hands
// the active flag to the first remaining page. The last page is never removed.
func (p Pages) Delete(id string) (Pages, error) {
	if len(p) <= 1 {
		return p.clone(), ErrLastPage
	}
	i := p.IndexOf(id)
	if i < 0 {
		return p.clone(), nil
	}
	out := p.clone()
	removed := out[i]
	out = slices.Delete(out, i, i+1)
	if removed.Active {
		for j := range out {
			out[j].Active = j == 0
		}
	}
	return out.renumber(), nil
}

// MoveToFront moves the page with the given id to position zero.
func (p Pages) MoveToFront(id string) Pages {
	i := p.IndexOf(id)
	if i <= 0 {
		return p.clone().renumber()
	}
	out, _ := p.Reorder(i, 0)
	return out
}

// Normalize repairs a collection read from storage: repeated or blank ids are
// replaced, exactly one page is left active and orders are made dense.
// It reports whether anything changed.
func (p Pages) Normalize() (Pages, bool) {
	out := p.clone()
	changed := false

	seen := make(map[string]bool, len(out))
	for i := range out {
		if out[i].ID == "" || seen[out[i].ID] {
			out[i].ID = NewPageID()
			changed = true
		}
		seen[out[i].ID] = true
	}

	active := -1
	for i := range out {
		if !out[i].Active {
			continue
		}
		if active >= 0 {
			out[i].Active = false
			changed = true
			continue
		}
		active = i
	}
	if active < 0 && len(out) > 0 {
		out[0].Active = true
		changed = true
	}

	for i := range out {
		if out[i].Order != i {
			changed = true
		}
	}
	return out.renumber(), changed
}

// Validate checks the collection invariants.
func (p Pages) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no pages", ErrInvalidPages)
	}
	active := 0
	seen := make(map[string]bool, len(p))
	for i, page := range p {
		if page.Order != i {
			return fmt.Errorf("%w: page %q has order %d at index %d", ErrInvalidPages, page.ID, page.Order, i)
		}
		if seen[page.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidPages, page.ID)
		}
		seen[page.ID] = true
		if page.Active {
			active++
		}
	}
	if active != 1 {
		return fmt.Errorf("%w: %d active pages", ErrInvalidPages, active)
	}
	return nil
}

func (p Pages) inRange(i int) bool {
	return i >= 0 && i < len(p)
}

func (p Pages) clone() Pages {
	out := make(Pages, len(p))
	copy(out, p)
	return out
}

func (p Pages) renumber() Pages {
	for i := range p {
		p[i].Order = i
	}
	return p
}
