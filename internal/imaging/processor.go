// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging stores uploaded gallery photos. Images are validated by
// sniffing content, auto-oriented from EXIF, bounded in size and written
// under a generated collision-free name.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"

	_ "golang.org/x/image/webp" // register webp decoding
	_ "image/gif"               // register gif decoding
)

const (
	// MaxUploadBytes caps a single upload at 10MB.
	MaxUploadBytes = 10 << 20

	// maxDimension bounds the longest edge of re-encoded images.
	maxDimension = 2560

	jpegQuality = 85
)

var (
	// ErrTooLarge means the upload exceeds MaxUploadBytes.
	ErrTooLarge = errors.New("image too large")
	// ErrUnsupportedType means the sniffed content type is not an
	// accepted image format.
	ErrUnsupportedType = errors.New("unsupported image type")
)

// allowedTypes maps accepted sniffed MIME types to file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Result describes a stored upload.
type Result struct {
	// Filename is the generated name within the uploads directory.
	Filename string
	// Path is the public URL path, e.g. "/uploads/tai-chi-170...jpg".
	Path string
	// OriginalName is the client-supplied filename.
	OriginalName string
	// Size is the stored size in bytes.
	Size int64
	// ContentType is the sniffed MIME type.
	ContentType string
}

// Processor writes validated uploads into a directory.
type Processor struct {
	dir string
	now func() time.Time
}

// NewProcessor creates a Processor storing files under dir. The directory
// is created if missing.
func NewProcessor(dir string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &Processor{dir: dir, now: time.Now}, nil
}

// Save validates and stores one upload. JPEG and PNG images are decoded,
// auto-oriented and re-encoded with a bounded longest edge; GIF and WebP
// are stored as received to keep animation frames intact.
func (p *Processor) Save(originalName string, data []byte) (Result, error) {
	if int64(len(data)) > MaxUploadBytes {
		return Result{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	out := data
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png":
		encoded, err := p.reencode(data, contentType)
		if err != nil {
			return Result{}, err
		}
		out = encoded
	default:
		// Decode the header only, to confirm the body is a real image.
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
		}
	}

	filename := p.generateName(originalName, ext)
	dst := filepath.Join(p.dir, filename)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", filename, err)
	}

	return Result{
		Filename:     filename,
		Path:         "/uploads/" + filename,
		OriginalName: originalName,
		Size:         int64(len(out)),
		ContentType:  contentType,
	}, nil
}

// reencode decodes, orients and re-encodes a JPEG or PNG, shrinking
// anything with a longest edge over maxDimension.
func (p *Processor) reencode(data []byte, contentType string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	img = applyOrientation(img, data)

	if b := img.Bounds(); b.Dx() > maxDimension || b.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	switch contentType {
	case "image/png":
		err = imaging.Encode(&buf, img, imaging.PNG)
	default:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}

// applyOrientation rotates or flips the image per its EXIF orientation tag.
// Images without EXIF data pass through untouched.
func applyOrientation(img image.Image, raw []byte) image.Image {
	meta, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return img
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	}
	return img
}

// generateName builds "<sanitized-base>-<unix-ms>-<random>.<ext>" so
// concurrent uploads of the same file never collide.
func (p *Processor) generateName(originalName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeBase(base)
	if base == "" {
		base = "photo"
	}
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%d-%s%s", base, p.now().UnixMilli(), suffix, ext)
}

// sanitizeBase lowercases the name and collapses anything that is not a
// letter or digit into single hyphens.
func sanitizeBase(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
