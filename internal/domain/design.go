package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementShape ElementType = "shape"
)

var ErrUnknownElement = errors.New("unknown design element type")

type Canvas struct {
	Width      int    `json:"width" validate:"gt=0"`
	Height     int    `json:"height" validate:"gt=0"`
	Background string `json:"background,omitempty"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TextElement struct {
	Position
	Content    string  `json:"content" validate:"required"`
	FontFamily string  `json:"font_family,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" validate:"gte=0"`
	Color      string  `json:"color,omitempty"`
	Align      string  `json:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

type ImageElement struct {
	Position
	URL    string  `json:"url" validate:"required,url"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type ShapeElement struct {
	Position
	Shape  string  `json:"shape" validate:"required,oneof=rect circle line"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Fill   string  `json:"fill,omitempty"`
	Stroke string  `json:"stroke,omitempty"`
}

// Element is a tagged union; exactly one payload matches Type.
type Element struct {
	Type  ElementType
	Text  *TextElement  `validate:"required_if=Type text"`
	Image *ImageElement `validate:"required_if=Type image"`
	Shape *ShapeElement `validate:"required_if=Type shape"`
}

type DesignData struct {
	Canvas   Canvas    `json:"canvas"`
	Elements []Element `json:"elements" validate:"dive"`
}

func (e Element) MarshalJSON() ([]byte, error) {
	var payload any
	switch e.Type {
	case ElementText:
		payload = struct {
			Type ElementType `json:"type"`
			*TextElement
		}{e.Type, e.Text}
	case ElementImage:
		payload = struct {
			Type ElementType `json:"type"`
			*ImageElement
		}{e.Type, e.Image}
	case ElementShape:
		payload = struct {
			Type ElementType `json:"type"`
			*ShapeElement
		}{e.Type, e.Shape}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, e.Type)
	}
	return json.Marshal(payload)
}

func (e *Element) UnmarshalJSON(b []byte) error {
	var head struct {
		Type ElementType `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}

	*e = Element{Type: head.Type}
	switch head.Type {
	case ElementText:
		e.Text = &TextElement{}
		return json.Unmarshal(b, e.Text)
	case ElementImage:
		e.Image = &ImageElement{}
		return json.Unmarshal(b, e.Image)
	case ElementShape:
		e.Shape = &ShapeElement{}
		return json.Unmarshal(b, e.Shape)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownElement, head.Type)
	}
}
