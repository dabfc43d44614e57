// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func newTestProcessor(t *testing.T) (*Processor, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := NewProcessor(dir)
	require.NoError(t, err)
	return p, dir
}

func TestSaveJPEG(t *testing.T) {
	p, dir := newTestProcessor(t)

	res, err := p.Save("My Photo (1).JPG", testJPEG(t, 100, 80))
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Equal(t, "My Photo (1).JPG", res.OriginalName)
	assert.Equal(t, "/uploads/"+res.Filename, res.Path)
	assert.Regexp(t, regexp.MustCompile(`^my-photo-1-\d+-[0-9a-f]{8}\.jpg$`), res.Filename)

	data, err := os.ReadFile(filepath.Join(dir, res.Filename))
	require.NoError(t, err)
	assert.Equal(t, res.Size, int64(len(data)))

	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, img.Bounds().Dx())
}

func TestSaveResizesLargeImages(t *testing.T) {
	p, dir := newTestProcessor(t)

	res, err := p.Save("wide.png", testPNG(t, 4000, 1000))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, res.Filename))
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), maxDimension)
	assert.LessOrEqual(t, img.Bounds().Dy(), maxDimension)
}

func TestSaveRejectsNonImages(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.Save("notes.txt", []byte("just some text, definitely not pixels"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = p.Save("page.html", []byte("<!DOCTYPE html><html><body>hi</body></html>"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaveRejectsOversized(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.Save("big.jpg", make([]byte, MaxUploadBytes+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSanitizeBase(t *testing.T) {
	cases := map[string]string{
		"Tai Chi Morning":  "tai-chi-morning",
		"IMG_1234":         "img-1234",
		"---":              "",
		"新年 celebration":   "celebration",
		"double  spaces":   "double-spaces",
		"trailing.dots...": "trailing-dots",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeBase(in), "input %q", in)
	}
}
