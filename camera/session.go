package camera

import (
	"log"
	"sync"
	"time"

	"facelog/metrics"

	"gocv.io/x/gocv"
)

// State of a capture session.
type State int

const (
	StateInit State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "init"
}

// LogAppender persists one sighting. Failures are swallowed by the
// capture loop (with a diagnostic) - liveness beats log completeness.
type LogAppender func(name, emotion string, at time.Time) error

// SessionConfig carries everything a session needs; there are no
// process-wide camera or model singletons.
type SessionConfig struct {
	Device        int
	Width, Height int
	FPS           int

	CascadeFile    string
	RecognizerFile string
	EmotionModel   string

	People              map[int]string
	ConfidenceScale     float64
	ConfidenceThreshold int

	Cadence Cadence
	Append  LogAppender
}

// Session owns the camera device, the three models and the shared frame
// buffer for the lifetime of one capture run.
type Session struct {
	cam        *Camera
	locator    *Locator
	recognizer *Recognizer
	emotions   *EmotionNet
	buffer     *FrameBuffer
	cadence    Cadence
	append     LogAppender

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu      sync.RWMutex
	state   State
	name    string
	emotion string
}

// StartSession opens the device and loads all models, then launches the
// capture loop. A device that can not be opened fails immediately - no
// session is created and nothing is retried.
func StartSession(conf SessionConfig) (*Session, error) {
	cam, err := OpenCamera(conf.Device, conf.Width, conf.Height, conf.FPS)
	if err != nil {
		return nil, err
	}
	locator, err := NewLocator(conf.CascadeFile)
	if err != nil {
		cam.Close()
		return nil, err
	}
	recognizer, err := NewRecognizer(conf.RecognizerFile, conf.People, conf.ConfidenceScale, conf.ConfidenceThreshold)
	if err != nil {
		locator.Close()
		cam.Close()
		return nil, err
	}
	emotions, err := NewEmotionNet(conf.EmotionModel)
	if err != nil {
		locator.Close()
		cam.Close()
		return nil, err
	}

	s := &Session{
		cam:        cam,
		locator:    locator,
		recognizer: recognizer,
		emotions:   emotions,
		buffer:     NewFrameBuffer(),
		cadence:    conf.Cadence,
		append:     conf.Append,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		name:       UnknownName,
		emotion:    NeutralEmotion,
	}
	s.setState(StateRunning)
	go s.run()
	return s, nil
}

func (s *Session) run() {
	defer close(s.done)

	frame := gocv.NewMat()
	defer frame.Close()
	gray := gocv.NewMat()
	defer gray.Close()

	fps := newFPSMeter(time.Now)
	var frameCount uint64

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		if ok := s.cam.Read(&frame); !ok || frame.Empty() {
			// Transient camera hiccup: skip this iteration.
			metrics.FrameReadErrors.Inc()
			continue
		}
		metrics.FramesRead.Inc()

		box, found := s.locator.Locate(frame)
		if found {
			metrics.FacesDetected.Inc()
			gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
			face := gray.Region(box)

			id := s.recognizer.Identify(face)
			s.observeIdentity(id)
			s.setName(id.Name)

			if s.cadence.EmotionDue(frameCount) {
				if label, err := s.emotions.Classify(face); err != nil {
					log.Printf("Emotion inference failed: %v", err)
				} else {
					s.setEmotion(label)
				}
				metrics.EmotionInferences.Inc()
			}
			face.Close()

			name, emotion := s.Labels()
			drawDetection(&frame, box, name, emotion)
		}

		rate := fps.Tick()
		metrics.CaptureFPS.Set(float64(rate))
		drawFPS(&frame, rate)

		if s.cadence.LogDue(frameCount, found) {
			name, emotion := s.Labels()
			if err := s.append(name, emotion, time.Now()); err != nil {
				// Best effort: the record is lost, the loop lives on.
				metrics.LogFailures.Inc()
				log.Printf("Log append failed: %v", err)
			} else {
				metrics.LogAppends.Inc()
			}
		}

		if buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame); err == nil {
			s.buffer.Publish(buf.GetBytes())
			buf.Close()
		} else {
			log.Printf("Frame encode failed: %v", err)
		}

		frameCount++
	}
}

func (s *Session) observeIdentity(id Identity) {
	switch id.Reason {
	case ReasonNone:
		metrics.IdentityAccepted.Inc()
	case ReasonLowConfidence, ReasonNotEnrolled:
		metrics.IdentityLowConfidence.Inc()
	case ReasonInternalError:
		metrics.IdentityErrors.Inc()
	}
}

// Stop signals the capture loop, waits for it to exit and then releases
// the device synchronously. No new frames are published afterwards, but
// a reader already holding the last frame may keep using it. Safe to
// call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done
		s.buffer.Close()
		if err := s.cam.Close(); err != nil {
			log.Printf("Error releasing camera: %v", err)
		}
		if err := s.locator.Close(); err != nil {
			log.Printf("Error closing cascade: %v", err)
		}
		if err := s.emotions.Close(); err != nil {
			log.Printf("Error closing emotion net: %v", err)
		}
		s.setState(StateStopped)
	})
}

// Frames exposes the shared frame buffer for streaming readers.
func (s *Session) Frames() *FrameBuffer {
	return s.buffer
}

// Labels returns the identity and emotion of the most recently detected
// face. There is no per-identity state: if two people alternate in
// frame, the labels simply flip.
func (s *Session) Labels() (name, emotion string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name, s.emotion
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) setName(name string) {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
}

func (s *Session) setEmotion(emotion string) {
	s.mu.Lock()
	s.emotion = emotion
	s.mu.Unlock()
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
