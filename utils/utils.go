package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"io"

	"github.com/nfnt/resize"
)

type ImageThumbConverted struct {
	ThumbSize int64
	NewX      uint16
	NewY      uint16
	OldX      uint16
	OldY      uint16
}

// CreateThumb re-encodes a JPEG frame as a thumbnail bounded by size.
func CreateThumb(size uint, reader io.Reader, writer io.Writer) (result ImageThumbConverted, err error) {
	image, _, err := image.Decode(reader)
	if err != nil {
		return result, err
	}
	var newBuf bytes.Buffer
	newImage := resize.Thumbnail(size, size, image, resize.Lanczos3)
	if err = jpeg.Encode(&newBuf, newImage, &jpeg.Options{Quality: 90}); err != nil {
		return
	}
	imageRect := newImage.Bounds().Size()
	result.NewX = uint16(imageRect.X)
	result.NewY = uint16(imageRect.Y)

	imageRect = image.Bounds().Size()
	result.OldX = uint16(imageRect.X)
	result.OldY = uint16(imageRect.Y)

	result.ThumbSize, err = io.Copy(writer, &newBuf)
	return
}
