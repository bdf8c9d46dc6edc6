package handlers

import "facelog/camera"

// How many of the latest log records the read endpoints look at
const recentLogCount = 10

var sessions *camera.Manager

// Init wires the session manager used by all handlers.
func Init(manager *camera.Manager) {
	sessions = manager
}

func currentEmotion() string {
	session := sessions.Current()
	if session == nil {
		return camera.NeutralEmotion
	}
	_, emotion := session.Labels()
	return emotion
}
