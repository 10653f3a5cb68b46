package services

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/sheetpack/sheetpack/internal/core/domain"
	"github.com/sheetpack/sheetpack/pkg/aseprite"
)

// deriveSpriteSheet builds the sprite-sheet asset from a parsed sheet.
// sheetPath is the sheet description file; a relative image reference is
// resolved against its canonicalized containing folder, an absolute one is
// used verbatim. The asset's name is the resolved image's file stem, and
// the stored image path is flattened to the file name since the image is
// copied directly into the namespace folder.
func deriveSpriteSheet(sheetPath string, sheet *aseprite.Sheet) (*domain.SpriteSheet, error) {
	meta := &sheet.Meta

	if meta.Size.W <= 0 || meta.Size.H <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d for sheet image %q",
			meta.Size.W, meta.Size.H, meta.Image)
	}
	if meta.Image == "" {
		return nil, fmt.Errorf("sheet %s has no image reference", sheetPath)
	}

	resolved := meta.Image
	if !filepath.IsAbs(resolved) {
		dir, err := filepath.Abs(filepath.Dir(sheetPath))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve containing folder of %s: %w", sheetPath, err)
		}
		resolved = filepath.Join(dir, meta.Image)
	}

	base := filepath.Base(resolved)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("invalid name for sheet image %q", resolved)
	}

	return &domain.SpriteSheet{
		Name:            name,
		ImagePath:       base,
		SourceImagePath: resolved,
		Width:           uint32(meta.Size.W),
		Height:          uint32(meta.Size.H),
		Format:          meta.Format,
	}, nil
}

// deriveAnimationDef converts the sheet's frames into an animation
// definition owned by the sheet asset. The frame count is capped at
// maxFrames; excess frames are dropped silently. A single geometry or
// duration value that does not fit in uint16 fails the whole definition.
func deriveAnimationDef(frames []aseprite.Frame, sheet *domain.SpriteSheet, maxFrames uint16) (*domain.AnimationDef, error) {
	count := len(frames)
	if count > int(maxFrames) {
		count = int(maxFrames)
	}

	records := make([]domain.AnimationFrame, 0, count)
	for _, frame := range frames[:count] {
		rect := frame.Data.Frame

		x, err := toUint16(rect.X, "frame x")
		if err != nil {
			return nil, fmt.Errorf("frame %q of sheet %q: %w", frame.Name, sheet.Name, err)
		}
		y, err := toUint16(rect.Y, "frame y")
		if err != nil {
			return nil, fmt.Errorf("frame %q of sheet %q: %w", frame.Name, sheet.Name, err)
		}
		width, err := toUint16(rect.W, "frame width")
		if err != nil {
			return nil, fmt.Errorf("frame %q of sheet %q: %w", frame.Name, sheet.Name, err)
		}
		height, err := toUint16(rect.H, "frame height")
		if err != nil {
			return nil, fmt.Errorf("frame %q of sheet %q: %w", frame.Name, sheet.Name, err)
		}
		duration, err := toUint16(frame.Data.Duration, "frame duration")
		if err != nil {
			return nil, fmt.Errorf("frame %q of sheet %q: %w", frame.Name, sheet.Name, err)
		}

		records = append(records, domain.AnimationFrame{
			Pos:      domain.FramePos{X: x, Y: y},
			Dims:     domain.FrameDims{Width: width, Height: height},
			Duration: duration,
		})
	}

	return &domain.AnimationDef{
		FrameCount: uint16(count),
		Frames:     records,
		Name:       sheet.Name,
		SheetName:  sheet.Name,
	}, nil
}

// toUint16 converts without truncation: out-of-range values are hard
// failures.
func toUint16(v int, what string) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%s value %d does not fit in uint16", what, v)
	}
	return uint16(v), nil
}

// animationTag extracts the parenthesized tag from a frame name: the
// substring strictly between the first '(' and the next ')', trimmed of
// surrounding whitespace. Reports false when no such pair exists.
func animationTag(frameName string) (string, bool) {
	open := strings.IndexByte(frameName, '(')
	if open < 0 {
		return "", false
	}
	end := strings.IndexByte(frameName[open+1:], ')')
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(frameName[open+1 : open+1+end]), true
}

// groupAnimations walks frames in insertion order and closes out each run
// of consecutive same-tag frames as one animation named
// "{defName}_{tag}" spanning [runStart, i). The final run is always closed,
// even when it is the sheet's only one. A frame name without a tag aborts
// grouping for the whole sheet: no animations are produced.
func groupAnimations(frames []aseprite.Frame, def *domain.AnimationDef) ([]domain.Animation, error) {
	if len(frames) == 0 {
		return nil, nil
	}
	// Animation index ranges are 16-bit.
	if len(frames) > math.MaxUint16 {
		return nil, fmt.Errorf("sheet %q has %d frames, more than an index range can address",
			def.Name, len(frames))
	}

	var anims []domain.Animation
	offset := 0
	lastTag := ""

	for i, frame := range frames {
		tag, ok := animationTag(frame.Name)
		if !ok {
			return nil, fmt.Errorf("frame %q of sheet %q has no animation tag", frame.Name, def.Name)
		}

		if i == 0 {
			lastTag = tag
			continue
		}
		if tag == lastTag {
			continue
		}

		anims = append(anims, domain.Animation{
			Offset:  uint16(offset),
			Length:  uint16(i - offset),
			Name:    def.Name + "_" + lastTag,
			DefName: def.Name,
		})
		lastTag = tag
		offset = i
	}

	anims = append(anims, domain.Animation{
		Offset:  uint16(offset),
		Length:  uint16(len(frames) - offset),
		Name:    def.Name + "_" + lastTag,
		DefName: def.Name,
	})

	return anims, nil
}
