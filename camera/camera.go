// Package camera implements the live capture pipeline: it owns the video
// device, runs face detection, identity and emotion classification on each
// frame, and publishes annotated JPEG frames into a shared buffer consumed
// by the streaming handlers.
package camera

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Camera owns the capture device handle.
type Camera struct {
	cap *gocv.VideoCapture
}

// OpenCamera opens the capture device. Failure here is fatal for the
// session - there is no retry.
func OpenCamera(device, width, height, fps int) (*Camera, error) {
	cap, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open camera device %d", device)
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, errors.Errorf("camera device %d is not available", device)
	}
	cap.Set(gocv.VideoCaptureFPS, float64(fps))
	cap.Set(gocv.VideoCaptureFrameWidth, float64(width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(height))
	return &Camera{cap: cap}, nil
}

// Read grabs the next frame into dst. A false return is a transient
// failure - callers skip the iteration and try again.
func (c *Camera) Read(dst *gocv.Mat) bool {
	return c.cap.Read(dst)
}

func (c *Camera) Close() error {
	return c.cap.Close()
}
