package camera

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Locator finds at most one face per frame with a Haar cascade.
type Locator struct {
	classifier gocv.CascadeClassifier
}

func NewLocator(cascadeFile string) (*Locator, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadeFile) {
		classifier.Close()
		return nil, errors.Errorf("error reading cascade file: %v", cascadeFile)
	}
	return &Locator{classifier: classifier}, nil
}

// Locate returns the first reported detection, clamped to frame bounds.
// All other detections are discarded - first reported wins, there is no
// largest-face or most-confident tie-break. A detection whose clamped
// box has zero area counts as no detection.
func (l *Locator) Locate(frame gocv.Mat) (image.Rectangle, bool) {
	rects := l.classifier.DetectMultiScale(frame)
	if len(rects) == 0 {
		return image.Rectangle{}, false
	}
	clamped := ClampRect(rects[0], frame.Cols(), frame.Rows())
	if clamped.Empty() {
		return image.Rectangle{}, false
	}
	return clamped, true
}

func (l *Locator) Close() error {
	return l.classifier.Close()
}

// ClampRect restricts r to a width x height frame so cropping can never
// read out of bounds.
func ClampRect(r image.Rectangle, width, height int) image.Rectangle {
	return r.Intersect(image.Rect(0, 0, width, height))
}
