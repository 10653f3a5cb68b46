package aseprite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validSheet = `{
  "frames": {
    "hero (walk) 0.aseprite": {
      "frame": { "x": 0, "y": 0, "w": 32, "h": 32 },
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": { "x": 0, "y": 0, "w": 32, "h": 32 },
      "sourceSize": { "w": 32, "h": 32 },
      "duration": 100
    },
    "hero (walk) 1.aseprite": {
      "frame": { "x": 32, "y": 0, "w": 32, "h": 32 },
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": { "x": 0, "y": 0, "w": 32, "h": 32 },
      "sourceSize": { "w": 32, "h": 32 },
      "duration": 150
    },
    "hero (idle) 0.aseprite": {
      "frame": { "x": 64, "y": 0, "w": 32, "h": 32 },
      "rotated": true,
      "trimmed": true,
      "spriteSourceSize": { "x": 0, "y": 0, "w": 32, "h": 32 },
      "sourceSize": { "w": 32, "h": 32 },
      "duration": 200
    }
  },
  "meta": {
    "app": "https://www.aseprite.org/",
    "version": "1.3.2",
    "image": "hero.png",
    "format": "RGBA8888",
    "size": { "w": 96, "h": 32 },
    "scale": "1",
    "frameTags": [],
    "layers": [{ "name": "Layer 1", "opacity": 255, "blendMode": "normal" }],
    "slices": []
  }
}`

func TestParseValidSheet(t *testing.T) {
	sheet, err := Parse([]byte(validSheet))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(sheet.Frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(sheet.Frames))
	}

	if sheet.Meta.Image != "hero.png" {
		t.Errorf("meta image = %q, want %q", sheet.Meta.Image, "hero.png")
	}
	if sheet.Meta.Size.W != 96 || sheet.Meta.Size.H != 32 {
		t.Errorf("meta size = %dx%d, want 96x32", sheet.Meta.Size.W, sheet.Meta.Size.H)
	}
	if sheet.Meta.Format != "RGBA8888" {
		t.Errorf("meta format = %q, want %q", sheet.Meta.Format, "RGBA8888")
	}

	first := sheet.Frames[0]
	if first.Data.Frame.W != 32 || first.Data.Duration != 100 {
		t.Errorf("first frame = %+v, unexpected geometry or duration", first.Data)
	}
	last := sheet.Frames[2]
	if !last.Data.Rotated || !last.Data.Trimmed {
		t.Error("third frame should be rotated and trimmed")
	}
}

func TestParsePreservesFrameOrder(t *testing.T) {
	sheet, err := Parse([]byte(validSheet))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Source order, not lexicographic order: "idle" comes last.
	want := []string{
		"hero (walk) 0.aseprite",
		"hero (walk) 1.aseprite",
		"hero (idle) 0.aseprite",
	}
	for i, name := range want {
		if sheet.Frames[i].Name != name {
			t.Errorf("frame[%d] = %q, want %q", i, sheet.Frames[i].Name, name)
		}
	}
}

func TestParseIgnoresUnknownTopLevelKeys(t *testing.T) {
	input := `{
  "generator": { "nested": [1, 2, 3] },
  "frames": {},
  "meta": { "image": "x.png", "size": { "w": 1, "h": 1 }, "format": "I8" },
  "trailer": "ignored"
}`
	sheet, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sheet.Meta.Image != "x.png" {
		t.Errorf("meta image = %q, want %q", sheet.Meta.Image, "x.png")
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{"frames": `},
		{"root not an object", `[1, 2, 3]`},
		{"root is a scalar", `42`},
		{"frames not an object", `{"frames": [1, 2]}`},
		{"bad frame entry", `{"frames": {"a (b) 0": {"frame": "nope"}}}`},
		{"non-integer coordinate", `{"frames": {"a (b) 0": {"frame": {"x": 1.5, "y": 0, "w": 1, "h": 1}, "duration": 100}}}`},
		{"bad meta", `{"meta": {"size": "huge"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse() error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.json")
	if err := os.WriteFile(path, []byte(validSheet), 0644); err != nil {
		t.Fatal(err)
	}

	sheet, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(sheet.Frames) != 3 {
		t.Errorf("got %d frames, want 3", len(sheet.Frames))
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ParseFile() expected error for a missing file")
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("a read failure must surface as an I/O error, not ErrMalformed")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}
