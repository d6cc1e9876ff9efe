package model

import "github.com/google/uuid"

// Item is the record the demo program keeps in its list.
// ID stays with the item across reorders; position is its only ordering.
type Item struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`
}

// New returns a pending item with a fresh ID.
func New(title string) Item {
	return Item{ID: uuid.NewString(), Title: title}
}

// Label is the display field accessor handed to the list widget.
func (it Item) Label() string { return it.Title }

// Stats counts done and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
