package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	MYSQL_DSN    = ""             // MySQL will be used if this is set
	SQLITE_FILE  = "user_logs.db" // SQLite will be used if MYSQL_DSN is not configured
	DEBUG_MODE   = true

	CAMERA_DEVICE = 0
	FRAME_WIDTH   = 640
	FRAME_HEIGHT  = 480
	CAMERA_FPS    = 15

	CASCADE_FILE    = "models-data/haarcascade_frontalface_default.xml"
	RECOGNIZER_FILE = "models-data/classifier.xml"
	EMOTION_MODEL   = "models-data/emotion_recognition.onnx"

	// CONFIDENCE_SCALE is a calibration constant specific to the LBPH
	// recognizer's distance metric: confidence = 100 * (1 - distance/scale)
	CONFIDENCE_SCALE     = 300.0
	CONFIDENCE_THRESHOLD = 40

	EMOTION_EVERY = 10 // run emotion inference every Nth frame
	LOG_EVERY     = 30 // append a log record every Nth frame (with a face present)

	// Default enrollment, used only when the people table is empty.
	// Format: "<id>:<name>,<id>:<name>,..."
	PEOPLE_SEED = "1:Amitesh,2:Maitreyi,3:Vishwas,4:Aayat"
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("CAMERA_DEVICE", &CAMERA_DEVICE)
	readEnvInt("FRAME_WIDTH", &FRAME_WIDTH)
	readEnvInt("FRAME_HEIGHT", &FRAME_HEIGHT)
	readEnvInt("CAMERA_FPS", &CAMERA_FPS)
	readEnvString("CASCADE_FILE", &CASCADE_FILE)
	readEnvString("RECOGNIZER_FILE", &RECOGNIZER_FILE)
	readEnvString("EMOTION_MODEL", &EMOTION_MODEL)
	readEnvFloat("CONFIDENCE_SCALE", &CONFIDENCE_SCALE)
	readEnvInt("CONFIDENCE_THRESHOLD", &CONFIDENCE_THRESHOLD)
	readEnvInt("EMOTION_EVERY", &EMOTION_EVERY)
	readEnvInt("LOG_EVERY", &LOG_EVERY)
	readEnvString("PEOPLE_SEED", &PEOPLE_SEED)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
