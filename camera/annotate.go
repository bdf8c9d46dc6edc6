package camera

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	boxColor         = color.RGBA{G: 255}
	fpsColor         = color.RGBA{G: 255}
	knownTextColor   = color.RGBA{R: 255, G: 255, B: 255}
	unknownTextColor = color.RGBA{R: 255}
)

// drawDetection overlays the bounding box and the "name | emotion" label.
func drawDetection(frame *gocv.Mat, box image.Rectangle, name, emotion string) {
	textColor := knownTextColor
	if name == UnknownName {
		textColor = unknownTextColor
	}
	gocv.Rectangle(frame, box, boxColor, 2)
	gocv.PutText(frame, fmt.Sprintf("%s | %s", name, emotion),
		image.Pt(box.Min.X, box.Min.Y-10), gocv.FontHersheySimplex, 0.6, textColor, 2)
}

// drawFPS overlays the frames-per-second counter. This is drawn on every
// frame, including frames with no detection.
func drawFPS(frame *gocv.Mat, fps int) {
	gocv.PutText(frame, fmt.Sprintf("FPS: %d", fps),
		image.Pt(15, 20), gocv.FontHersheySimplex, 0.6, fpsColor, 2)
}
