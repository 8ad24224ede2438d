package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Version is the document format version written by WriteJSON.
const Version = 1

const (
	typeShape = "shape"
	typeText  = "text"
)

var slideNamespace = uuid.MustParse("8f7c5a4e-2b1d-4c3e-9a6f-0d1e2f3a4b5c")

type document struct {
	Version int           `json:"version"`
	Meta    deck.Meta     `json:"meta"`
	Page    deck.PageSize `json:"page"`
	Slides  []slide       `json:"slides"`
}

type slide struct {
	ID         string      `json:"id"`
	Background *deck.Color `json:"background,omitempty"`
	Elements   []element   `json:"elements"`
}

type element struct {
	Type  string        `json:"type"`
	Shape *deck.Shape   `json:"shape,omitempty"`
	Text  *deck.TextBox `json:"text,omitempty"`
}

// SlideID returns the stable identifier of slide index in a deck titled title.
func SlideID(title string, index int) string {
	return uuid.NewSHA1(slideNamespace, []byte(fmt.Sprintf("%s/%d", title, index))).String()
}

// WriteJSON encodes a deck as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *deck.Deck, w io.Writer) error {
	out := document{
		Version: Version,
		Meta:    d.Meta,
		Page:    d.Page,
		Slides:  make([]slide, d.Len()),
	}

	for i, s := range d.Slides() {
		sl := slide{ID: SlideID(d.Meta.Title, i), Elements: []element{}}
		if bg, ok := s.Background(); ok {
			sl.Background = &bg
		}
		for _, e := range s.Elements() {
			switch v := e.(type) {
			case *deck.Shape:
				sl.Elements = append(sl.Elements, element{Type: typeShape, Shape: v})
			case *deck.TextBox:
				sl.Elements = append(sl.Elements, element{Type: typeText, Text: v})
			}
		}
		out.Slides[i] = sl
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "encode deck")
	}
	return nil
}

// ExportJSON writes a deck to a JSON file at path.
func ExportJSON(d *deck.Deck, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
