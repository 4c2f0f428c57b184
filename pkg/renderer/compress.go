package renderer

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/m-mizutani/goerr/v2"

	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// Compression ladder parameters. The budget is measured on the emitted
// data URL string, and the quality steps must run in this exact order so
// the same pixels always produce the same artifact.
const (
	initialQuality  = 100
	qualityStep     = 10
	minQuality      = 10
	fallbackQuality = 70
)

// Compress encodes the wall into a base64 data URL no larger than maxBytes.
// JPEG walls walk the quality ladder down first; if minimum quality is
// still over budget (or the format has no quality knob, like PNG), the
// image is downscaled by sqrt(budget/size) and re-encoded once. A result
// that still exceeds the budget fails with a too_large tag.
func Compress(img image.Image, mimeType string, maxBytes int) (string, error) {
	dataURL, err := encodeDataURL(img, mimeType, initialQuality)
	if err != nil {
		return "", err
	}

	if mimeType == "image/jpeg" {
		quality := initialQuality
		for len(dataURL) > maxBytes && quality > minQuality {
			quality -= qualityStep
			if dataURL, err = encodeDataURL(img, mimeType, quality); err != nil {
				return "", err
			}
		}
	}

	if len(dataURL) > maxBytes {
		factor := math.Sqrt(float64(maxBytes) / float64(len(dataURL)))
		w := int(float64(img.Bounds().Dx()) * factor)
		h := int(float64(img.Bounds().Dy()) * factor)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		resized := scaleTo(img, w, h)
		if dataURL, err = encodeDataURL(resized, mimeType, fallbackQuality); err != nil {
			return "", err
		}
	}

	if len(dataURL) > maxBytes {
		return "", goerr.New("unable to compress image under the byte budget",
			goerr.V("budget", maxBytes), goerr.V("size", len(dataURL)),
			goerr.T(types.TagTooLarge))
	}

	return dataURL, nil
}

// CompressWall applies the wall's own format
func CompressWall(w *Wall, maxBytes int) (string, error) {
	return Compress(w.Image, w.Kind.MIMEType(), maxBytes)
}

func encodeDataURL(img image.Image, mimeType string, quality int) (string, error) {
	var buf bytes.Buffer
	switch mimeType {
	case "image/jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return "", goerr.Wrap(err, "failed to encode JPEG")
		}
	case "image/png":
		if err := png.Encode(&buf, img); err != nil {
			return "", goerr.Wrap(err, "failed to encode PNG")
		}
	default:
		return "", goerr.New("unsupported image MIME type",
			goerr.V("mime_type", mimeType), goerr.T(types.TagInvalidInput))
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
