package camera

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// EmotionLabels is the fixed output set of the emotion network, in the
// order of its output neurons.
var EmotionLabels = []string{"Angry", "Disgust", "Fear", "Happy", "Sad", "Surprise", "Neutral"}

// NeutralEmotion is the label reported before any inference has run and
// whenever no session is active.
const NeutralEmotion = "Neutral"

const emotionInputSize = 48

// EmotionNet classifies a grayscale face crop into one of EmotionLabels.
type EmotionNet struct {
	net gocv.Net
}

func NewEmotionNet(modelFile string) (*EmotionNet, error) {
	net := gocv.ReadNet(modelFile, "")
	if net.Empty() {
		return nil, errors.Errorf("can not load emotion model: %v", modelFile)
	}
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)
	return &EmotionNet{net: net}, nil
}

// Classify resizes the crop to the network's 48x48 input, normalizes
// pixel intensity to [0,1] and returns the highest-probability label.
func (e *EmotionNet) Classify(faceGray gocv.Mat) (string, error) {
	if faceGray.Empty() {
		return "", errors.New("empty face crop")
	}
	blob := gocv.BlobFromImage(faceGray, 1.0/255.0,
		image.Pt(emotionInputSize, emotionInputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	e.net.SetInput(blob, "")
	prob := e.net.Forward("")
	defer prob.Close()

	flat := prob.Reshape(1, 1)
	defer flat.Close()

	scores := make([]float32, flat.Cols())
	for i := range scores {
		scores[i] = flat.GetFloatAt(0, i)
	}
	best := Argmax(scores)
	if best < 0 || best >= len(EmotionLabels) {
		return "", errors.Errorf("unexpected emotion output width %d", len(scores))
	}
	return EmotionLabels[best], nil
}

func (e *EmotionNet) Close() error {
	return e.net.Close()
}

// Argmax returns the index of the largest score; ties go to the first
// index encountered. Returns -1 for an empty slice.
func Argmax(scores []float32) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
