// Package aseprite parses the JSON sheet descriptions exported by Aseprite
// ("Hash" output format: one object keyed by frame name under "frames", plus
// a "meta" object).
package aseprite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed marks structurally invalid sheet descriptions: bad JSON, a
// non-object root, or a frame/meta entry that does not match the exported
// shape. I/O failures are reported as plain wrapped errors instead.
var ErrMalformed = errors.New("malformed sheet description")

// Size is a width/height pair in pixels.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Rect is a rectangle on the packed sheet image.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// FrameData is the geometry and timing of a single exported frame.
type FrameData struct {
	Frame            Rect  `json:"frame"`
	Rotated          bool  `json:"rotated"`
	Trimmed          bool  `json:"trimmed"`
	SpriteSourceSize Rect  `json:"spriteSourceSize"`
	SourceSize       Size  `json:"sourceSize"`
	Duration         int   `json:"duration"`
}

// Frame pairs a frame's exported name with its data. The name embeds the
// animation tag in parentheses, e.g. "hero (walk) 0001".
type Frame struct {
	Name string
	Data FrameData
}

// FrameTag is an Aseprite timeline tag. Parsed but not consumed by the
// pipeline; grouping works off frame names instead.
type FrameTag struct {
	Name      string `json:"name"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
	Color     string `json:"color"`
}

// Layer is an Aseprite layer entry.
type Layer struct {
	Name      string `json:"name"`
	Opacity   int    `json:"opacity"`
	BlendMode string `json:"blendMode"`
}

// Meta is the sheet-level metadata block. Only Image, Size and Format are
// consumed downstream.
type Meta struct {
	App       string            `json:"app"`
	Version   string            `json:"version"`
	Image     string            `json:"image"`
	Format    string            `json:"format"`
	Size      Size              `json:"size"`
	Scale     string            `json:"scale"`
	FrameTags []FrameTag        `json:"frameTags"`
	Layers    []Layer           `json:"layers"`
	Slices    []json.RawMessage `json:"slices"`
}

// Sheet is one parsed sheet description. Frames preserves the insertion
// order of the source mapping; the animation grouping downstream depends
// on it.
type Sheet struct {
	Frames []Frame
	Meta   Meta
}

// ParseFile reads and parses the sheet description at path.
func ParseFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", path, err)
	}

	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	return sheet, nil
}

// Parse decodes one sheet description. The root must be a JSON object;
// "frames" and "meta" are recognized, every other top-level key is skipped.
// A single frame or meta entry that fails to decode aborts the whole sheet,
// so no partial sheets escape.
//
// encoding/json map decoding would lose the frame order, so the root object
// is walked token by token instead.
func Parse(data []byte) (*Sheet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: root is not an object", ErrMalformed)
	}

	sheet := &Sheet{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, keyTok)
		}

		switch key {
		case "frames":
			if err := parseFrames(dec, sheet); err != nil {
				return nil, err
			}
		case "meta":
			if err := dec.Decode(&sheet.Meta); err != nil {
				return nil, fmt.Errorf("%w: failed to decode meta: %v", ErrMalformed, err)
			}
		default:
			// Unrecognized top-level keys are ignored without error.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return sheet, nil
}

// parseFrames decodes the frame-name-keyed object, appending frames in
// source order.
func parseFrames(dec *json.Decoder, sheet *Sheet) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: frames is not an object", ErrMalformed)
	}

	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		name, ok := nameTok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected token %v", ErrMalformed, nameTok)
		}

		var data FrameData
		if err := dec.Decode(&data); err != nil {
			return fmt.Errorf("%w: failed to decode frame %q: %v", ErrMalformed, name, err)
		}

		sheet.Frames = append(sheet.Frames, Frame{Name: name, Data: data})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
