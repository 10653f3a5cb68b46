// Package codec serializes pipeline assets into the engine's fixed binary
// resource layouts: little-endian, fixed-width integers, no padding and no
// versioning header.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sheetpack/sheetpack/internal/core/domain"
	"github.com/sheetpack/sheetpack/internal/core/ports"
)

// ResourceWriter packs assets into binary resource files named by their
// decimal identifier. Identifiers are recomputed from asset names here;
// they are never persisted in the intermediate stage.
type ResourceWriter struct {
	ids ports.Identifier
}

func NewResourceWriter(ids ports.Identifier) *ResourceWriter {
	return &ResourceWriter{ids: ids}
}

// WriteSpriteSheet packs a sprite-sheet resource. The sheet image is
// resolved relative to the intermediate file's containing folder.
func (w *ResourceWriter) WriteSpriteSheet(assetPath string, sheet *domain.SpriteSheet, outDir string) error {
	imgPath := filepath.Join(filepath.Dir(assetPath), sheet.ImagePath)
	px, err := ReadPixels(imgPath)
	if err != nil {
		return err
	}

	id := w.ids.ID(sheet.Name)
	return w.writeResource(outDir, id, func(f io.Writer) error {
		return EncodeSpriteSheet(f, id, px)
	})
}

func (w *ResourceWriter) WriteAnimationDef(def *domain.AnimationDef, outDir string) error {
	id := w.ids.ID(def.Name)
	sheetID := w.ids.ID(def.SheetName)
	return w.writeResource(outDir, id, func(f io.Writer) error {
		return EncodeAnimationDef(f, id, sheetID, def)
	})
}

func (w *ResourceWriter) WriteAnimation(anim *domain.Animation, outDir string) error {
	id := w.ids.ID(anim.Name)
	defID := w.ids.ID(anim.DefName)
	return w.writeResource(outDir, id, func(f io.Writer) error {
		return EncodeAnimation(f, id, defID, anim)
	})
}

func (w *ResourceWriter) writeResource(outDir string, id uint32, encode func(io.Writer) error) error {
	path := filepath.Join(outDir, strconv.FormatUint(uint64(id), 10))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create resource %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write resource %s: %w", path, err)
	}
	return f.Close()
}

// spriteSheetHeader mirrors the engine's sprite-sheet resource prelude.
// binary.Write packs the fields without padding.
type spriteSheetHeader struct {
	ID       uint32
	Width    uint32
	Height   uint32
	Channels uint8
	Format   int32
	DataSize uint64
}

// EncodeSpriteSheet writes id, decoded image dimensions, channel count,
// pixel-format code, the raw byte count and the interleaved pixel bytes.
func EncodeSpriteSheet(w io.Writer, id uint32, px *Pixels) error {
	hdr := spriteSheetHeader{
		ID:       id,
		Width:    px.Width,
		Height:   px.Height,
		Channels: px.Channels,
		Format:   int32(px.Format),
		DataSize: uint64(px.Width) * uint64(px.Height) * uint64(px.Channels),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}

	_, err := w.Write(px.Data)
	return err
}

// EncodeAnimationDef writes id, the owning sheet's id, the frame count and
// one x/y/width/height/duration quintet of uint16 per frame.
func EncodeAnimationDef(w io.Writer, id, sheetID uint32, def *domain.AnimationDef) error {
	if err := binary.Write(w, binary.LittleEndian, id); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, sheetID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, def.FrameCount); err != nil {
		return err
	}

	for _, frame := range def.Frames {
		record := [5]uint16{
			frame.Pos.X,
			frame.Pos.Y,
			frame.Dims.Width,
			frame.Dims.Height,
			frame.Duration,
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return err
		}
	}
	return nil
}

// EncodeAnimation writes id, the owning definition's id and the frame
// index range.
func EncodeAnimation(w io.Writer, id, defID uint32, anim *domain.Animation) error {
	if err := binary.Write(w, binary.LittleEndian, id); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, defID); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, anim.Offset); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, anim.Length)
}
