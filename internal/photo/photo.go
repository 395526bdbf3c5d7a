// Package photo normalizes raw uploads into the string-encoded image payload
// the classifier and the notebook store consume. It rejects unsupported or
// oversized input before any network call is made.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
)

const (
	maxBytes  = 8 << 20
	maxPixels = 18_000_000
)

var (
	ErrEmpty       = errors.New("photo: empty input")
	ErrTooLarge    = errors.New("photo: image too large")
	ErrUnsupported = errors.New("photo: unsupported image format")
)

// Normalize validates raw image bytes and returns them as a data URL.
func Normalize(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmpty
	}
	if len(raw) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(raw))
	}
	mime := SniffMime(raw)
	if mime == "" {
		return "", ErrUnsupported
	}
	// jpeg/png headers carry dimensions; webp has no stdlib decoder, the byte
	// cap has to do
	if mime == "image/jpeg" || mime == "image/png" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
		if cfg.Width*cfg.Height > maxPixels {
			return "", fmt.Errorf("%w: %dx%d px", ErrTooLarge, cfg.Width, cfg.Height)
		}
	}
	return MakeDataURL(mime, base64.StdEncoding.EncodeToString(raw)), nil
}

// SniffMime detects the formats we accept, empty string otherwise.
func SniffMime(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	// RIFF....WEBP
	if len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP" {
		return "image/webp"
	}
	return ""
}

func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// Decode reverses a data-URL or bare base64 payload into bytes plus MIME.
func Decode(payload string) ([]byte, string, error) {
	s := strings.TrimSpace(payload)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		idx := strings.IndexByte(s, ',')
		if idx < 0 {
			return nil, "", errors.New("photo: malformed data URL")
		}
		meta := s[len("data:"):idx]
		if semi := strings.IndexByte(meta, ';'); semi >= 0 {
			hintMIME = meta[:semi]
		} else {
			hintMIME = meta
		}
		s = s[idx+1:]
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// URL-safe alphabet shows up in some clients
		if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
			b = b2
		} else {
			return nil, "", err
		}
	}
	mime := hintMIME
	if mime == "" {
		mime = http.DetectContentType(b)
	}
	return b, mime, nil
}
