package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the local engine: image cleanup plus a vie+eng tesseract
// pass. It needs no credentials and is the fallback when the cloud engines
// are unavailable or over quota. The caller gets plain recognized text, not
// structured JSON.
type Tesseract struct{}

// NewTesseract creates the local engine.
func NewTesseract() *Tesseract { return &Tesseract{} }

func (t *Tesseract) Name() string { return "tesseract" }

// Recognize preprocesses the image and runs tesseract over it.
func (t *Tesseract) Recognize(ctx context.Context, img []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	decoded, err := imaging.Decode(bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	processed := preprocess(decoded)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, processed, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode preprocessed image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage("vie", "eng"); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}

// preprocess flattens the ticket print to high-contrast black and white,
// which consistently beats raw photos on tesseract accuracy.
func preprocess(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 50)
	gray = imaging.Sharpen(gray, 0.7)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1300, imaging.Lanczos)
	}
	return binarize(gray, 140)
}

// binarize applies a global threshold over a grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := uint8((r + g + bb) / 3 >> 8)
			var v uint8
			if gray > threshold {
				v = 255
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
