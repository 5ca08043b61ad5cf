// Package note implements quick notes: the smallest feature store in
// the app, a flat list of timestamped text snippets.
package note

import "errors"

var (
	ErrNotFound  = errors.New("note not found")
	ErrEmptyText = errors.New("note text must not be empty")
)

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n Note) RecordID() string { return n.ID }
