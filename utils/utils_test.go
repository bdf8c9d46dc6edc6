package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestCreateThumb(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	encoded := bytes.Buffer{}
	if err := jpeg.Encode(&encoded, src, nil); err != nil {
		t.Fatal(err)
	}

	thumb := bytes.Buffer{}
	result, err := CreateThumb(32, bytes.NewReader(encoded.Bytes()), &thumb)
	if err != nil {
		t.Fatalf("CreateThumb() error = %v", err)
	}
	if result.OldX != 100 || result.OldY != 50 {
		t.Errorf("original size = %dx%d, want 100x50", result.OldX, result.OldY)
	}
	if result.NewX > 32 || result.NewY > 32 {
		t.Errorf("thumb size = %dx%d, want bounded by 32", result.NewX, result.NewY)
	}
	if result.ThumbSize != int64(thumb.Len()) || thumb.Len() == 0 {
		t.Errorf("reported size %d does not match written %d", result.ThumbSize, thumb.Len())
	}

	decoded, _, err := image.Decode(bytes.NewReader(thumb.Bytes()))
	if err != nil {
		t.Fatalf("thumb does not decode: %v", err)
	}
	if decoded.Bounds().Dx() != int(result.NewX) || decoded.Bounds().Dy() != int(result.NewY) {
		t.Errorf("decoded thumb is %v, want %dx%d", decoded.Bounds(), result.NewX, result.NewY)
	}
}
