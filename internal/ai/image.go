package ai

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// maxImageEdge caps uploaded images at 800px on the longer edge to save
// tokens; model quality does not improve beyond that for face photos.
const maxImageEdge = 800

const dataURIPrefix = "data:image/jpeg;base64,"

// ResizeImage resizes an image to fit within maxSize (width or height)
// while keeping aspect ratio, re-encoding as JPEG.
func ResizeImage(data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxSize && height <= maxSize {
		// Re-encode as JPEG to ensure consistent format.
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
		return buf.Bytes(), nil
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxSize
		newHeight = int(float64(height) * float64(maxSize) / float64(width))
	} else {
		newHeight = maxSize
		newWidth = int(float64(width) * float64(maxSize) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeDataURI wraps JPEG bytes in the data-URI form used for storage.
func EncodeDataURI(jpegData []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(jpegData)
}

// DecodeImagePayload decodes an image payload that is either plain base64
// or a full data URI. Anything before the first comma is treated as the
// URI header and discarded.
func DecodeImagePayload(payload string) ([]byte, error) {
	raw := payload
	if i := strings.IndexByte(payload, ','); i >= 0 {
		raw = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}
