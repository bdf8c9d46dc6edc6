package camera

import (
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"
)

// UnknownName is the label used for every rejected identification.
const UnknownName = "UNKNOWN"

// UnknownReason says why an identification was rejected. The label shown
// downstream is UNKNOWN in all cases; the reason is kept for logs and
// metrics only.
type UnknownReason int

const (
	ReasonNone UnknownReason = iota
	ReasonLowConfidence
	ReasonNotEnrolled
	ReasonInternalError
)

// Identity is the result of classifying one face crop.
type Identity struct {
	Name       string
	Confidence int
	Reason     UnknownReason
}

func (id Identity) Accepted() bool {
	return id.Reason == ReasonNone
}

// Recognizer classifies grayscale face crops against the enrolled set
// using an LBPH model trained by the dataset tool.
type Recognizer struct {
	rec       *contrib.LBPHFaceRecognizer
	people    map[int]string
	scale     float64
	threshold int
}

func NewRecognizer(modelFile string, people map[int]string, scale float64, threshold int) (*Recognizer, error) {
	if _, err := os.Stat(modelFile); err != nil {
		return nil, errors.Wrap(err, "can not load recognizer model")
	}
	rec := contrib.NewLBPHFaceRecognizer()
	rec.LoadFile(modelFile)
	return &Recognizer{
		rec:       rec,
		people:    people,
		scale:     scale,
		threshold: threshold,
	}, nil
}

// Identify classifies a grayscale crop. Any failure inside the native
// predict call is reported as UNKNOWN - never propagated, so a bad crop
// can not kill the capture loop.
func (r *Recognizer) Identify(faceGray gocv.Mat) (result Identity) {
	defer func() {
		if e := recover(); e != nil {
			result = Identity{Name: UnknownName, Reason: ReasonInternalError}
		}
	}()
	if faceGray.Empty() {
		return Identity{Name: UnknownName, Reason: ReasonInternalError}
	}
	resp := r.rec.PredictExtendedResponse(faceGray)
	confidence := ConfidenceFromDistance(float64(resp.Confidence), r.scale)
	return r.resolve(int(resp.Label), confidence)
}

// ConfidenceFromDistance rescales the recognizer's distance metric to a
// confidence in [0,100]: distance 0 maps to 100, distance==scale maps
// to 0. The scale is a calibration constant, not a universal bound, so
// the result can go negative for very distant faces.
func ConfidenceFromDistance(distance, scale float64) int {
	return int(100 * (1 - distance/scale))
}

func (r *Recognizer) resolve(label, confidence int) Identity {
	if confidence <= r.threshold {
		return Identity{Name: UnknownName, Confidence: confidence, Reason: ReasonLowConfidence}
	}
	name, ok := r.people[label]
	if !ok {
		return Identity{Name: UnknownName, Confidence: confidence, Reason: ReasonNotEnrolled}
	}
	return Identity{Name: name, Confidence: confidence}
}
