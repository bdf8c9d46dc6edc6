package camera

import "testing"

func TestCadenceEmotionDue(t *testing.T) {
	c := Cadence{EmotionEvery: 10, LogEvery: 30}
	for frame := uint64(0); frame < 100; frame++ {
		want := frame%10 == 0
		if got := c.EmotionDue(frame); got != want {
			t.Fatalf("EmotionDue(%d) = %v, want %v", frame, got, want)
		}
	}
}

func TestCadenceEmotionEveryFrame(t *testing.T) {
	for _, every := range []int{0, 1} {
		c := Cadence{EmotionEvery: every}
		for frame := uint64(0); frame < 5; frame++ {
			if !c.EmotionDue(frame) {
				t.Errorf("EmotionEvery=%d: EmotionDue(%d) = false, want true", every, frame)
			}
		}
	}
}

func TestCadenceLogDue(t *testing.T) {
	c := Cadence{EmotionEvery: 10, LogEvery: 30}
	tests := []struct {
		name      string
		frame     uint64
		faceFound bool
		want      bool
	}{
		{"cadence hit with face", 0, true, true},
		{"cadence hit without face", 30, false, false},
		{"off-cadence with face", 31, true, false},
		{"off-cadence without face", 17, false, false},
		{"later cadence hit", 90, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.LogDue(tt.frame, tt.faceFound); got != tt.want {
				t.Errorf("LogDue(%d, %v) = %v, want %v", tt.frame, tt.faceFound, got, tt.want)
			}
		})
	}
}

func TestCadenceLogDisabled(t *testing.T) {
	c := Cadence{LogEvery: 0}
	if c.LogDue(0, true) {
		t.Error("LogEvery=0 must never log")
	}
}
