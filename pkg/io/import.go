package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// ReadJSON decodes a deck document from r.
//
// Every element is validated as it is added, so ReadJSON fails on documents
// with empty geometry, zero font sizes or unknown element types. The
// returned deck is frozen. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*deck.Deck, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode deck")
	}
	if data.Version != Version {
		return nil, errors.New(errors.ErrCodeUnsupported, "deck document version %d, want %d", data.Version, Version)
	}

	d := deck.New(data.Page, data.Meta)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	for i, sd := range data.Slides {
		s, err := d.AddSlide()
		if err != nil {
			return nil, err
		}
		if sd.Background != nil {
			if err := s.FillBackground(*sd.Background); err != nil {
				return nil, err
			}
		}
		for j, ed := range sd.Elements {
			e, err := ed.decode()
			if err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "slide %d element %d", i+1, j)
			}
			if err := s.Add(e); err != nil {
				return nil, errors.Wrap(errors.GetCode(err), err, "slide %d element %d", i+1, j)
			}
		}
	}
	d.Freeze()
	return d, nil
}

func (e element) decode() (deck.Element, error) {
	switch e.Type {
	case typeShape:
		if e.Shape == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "shape element without shape")
		}
		return e.Shape, nil
	case typeText:
		if e.Text == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "text element without text")
		}
		return e.Text, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown element type %q", e.Type)
	}
}

// ImportJSON reads a deck from a JSON file at path.
func ImportJSON(path string) (*deck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
