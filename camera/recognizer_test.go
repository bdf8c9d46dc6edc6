package camera

import "testing"

func TestConfidenceFromDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"zero distance is full confidence", 0, 100},
		{"distance at scale is zero confidence", 300, 0},
		{"enrolled match", 100, 66},
		{"distant face", 250, 16},
		{"beyond scale goes negative", 450, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfidenceFromDistance(tt.distance, 300); got != tt.want {
				t.Errorf("ConfidenceFromDistance(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestConfidenceFromDistanceMonotone(t *testing.T) {
	prev := ConfidenceFromDistance(0, 300)
	for d := 10.0; d <= 600; d += 10 {
		cur := ConfidenceFromDistance(d, 300)
		if cur > prev {
			t.Fatalf("confidence increased from %d to %d at distance %v", prev, cur, d)
		}
		prev = cur
	}
}

func testRecognizer() *Recognizer {
	return &Recognizer{
		people:    map[int]string{1: "Amitesh", 2: "Maitreyi", 3: "Vishwas", 4: "Aayat"},
		scale:     300,
		threshold: 40,
	}
}

func TestRecognizerResolve(t *testing.T) {
	r := testRecognizer()
	tests := []struct {
		name       string
		label      int
		confidence int
		want       Identity
	}{
		{
			"threshold is strict: exactly 40 is rejected",
			2, 40,
			Identity{Name: UnknownName, Confidence: 40, Reason: ReasonLowConfidence},
		},
		{
			"41 is accepted",
			2, 41,
			Identity{Name: "Maitreyi", Confidence: 41},
		},
		{
			"id outside the enrolled set",
			9, 80,
			Identity{Name: UnknownName, Confidence: 80, Reason: ReasonNotEnrolled},
		},
		{
			"negative confidence",
			1, -10,
			Identity{Name: UnknownName, Confidence: -10, Reason: ReasonLowConfidence},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.resolve(tt.label, tt.confidence); got != tt.want {
				t.Errorf("resolve(%d, %d) = %+v, want %+v", tt.label, tt.confidence, got, tt.want)
			}
		})
	}
}

// The two calibration scenarios from the original enrollment: a match at
// distance 100 is accepted, one at 250 is not.
func TestRecognizerCalibrationScenarios(t *testing.T) {
	r := testRecognizer()

	got := r.resolve(2, ConfidenceFromDistance(100, r.scale))
	if !got.Accepted() || got.Name != "Maitreyi" || got.Confidence != 66 {
		t.Errorf("distance 100: got %+v, want accepted Maitreyi at confidence 66", got)
	}

	got = r.resolve(2, ConfidenceFromDistance(250, r.scale))
	if got.Accepted() || got.Name != UnknownName {
		t.Errorf("distance 250: got %+v, want rejected UNKNOWN", got)
	}
}
