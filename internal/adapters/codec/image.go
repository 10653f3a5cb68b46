package codec

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrUnsupportedFormat marks decoded images whose pixel layout the engine
// cannot consume.
var ErrUnsupportedFormat = errors.New("unsupported pixel format")

// PixelFormat is the engine's pixel-format code embedded in sprite-sheet
// resources. The values are part of the binary contract.
type PixelFormat int32

const (
	FormatUnknown PixelFormat = iota
	FormatRGB8
	FormatRGBA8
)

// Pixels is a decoded sheet image: dimensions, channel layout and the raw
// interleaved bytes, len(Data) == Width*Height*Channels.
type Pixels struct {
	Width    uint32
	Height   uint32
	Channels uint8
	Format   PixelFormat
	Data     []byte
}

// ReadPixels decodes the image at path into raw interleaved pixel bytes.
// PNG, JPEG, BMP and TIFF are recognized. 8-bit RGBA images pass through;
// every other 8-bit layout (indexed, grayscale, YCbCr from JPEG) is
// expanded to RGBA8. 16-bit depths are rejected with ErrUnsupportedFormat
// instead of being narrowed silently.
func ReadPixels(path string) (*Pixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	switch im := img.(type) {
	case *image.NRGBA:
		return rgbaPixels(im.Pix, im.Stride, im.Rect), nil
	case *image.RGBA:
		return rgbaPixels(im.Pix, im.Stride, im.Rect), nil
	case *image.Gray16, *image.NRGBA64, *image.RGBA64:
		return nil, fmt.Errorf("%w: 16-bit %T in %s", ErrUnsupportedFormat, img, path)
	default:
		conv := image.NewNRGBA(img.Bounds())
		draw.Draw(conv, conv.Rect, img, img.Bounds().Min, draw.Src)
		return rgbaPixels(conv.Pix, conv.Stride, conv.Rect), nil
	}
}

// rgbaPixels flattens a 4-channel image into tightly packed rows. Decoded
// images normally have Stride == 4*width already, but row slicing keeps the
// output exact either way.
func rgbaPixels(pix []byte, stride int, rect image.Rectangle) *Pixels {
	w, h := rect.Dx(), rect.Dy()
	data := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		data = append(data, row...)
	}

	return &Pixels{
		Width:    uint32(w),
		Height:   uint32(h),
		Channels: 4,
		Format:   FormatRGBA8,
		Data:     data,
	}
}
