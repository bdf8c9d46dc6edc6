package main

import (
	"log"
	"strings"
	"time"

	"facelog/camera"
	"facelog/config"
	"facelog/db"
	"facelog/handlers"
	"facelog/metrics"
	"facelog/models"
	"facelog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

// startSession builds a capture session from configuration and the
// current enrollment table. The manager calls this on /start_feed (and
// on the first page load).
func startSession() (*camera.Session, error) {
	people, err := models.PeopleByID()
	if err != nil {
		return nil, err
	}
	return camera.StartSession(camera.SessionConfig{
		Device:              config.CAMERA_DEVICE,
		Width:               config.FRAME_WIDTH,
		Height:              config.FRAME_HEIGHT,
		FPS:                 config.CAMERA_FPS,
		CascadeFile:         config.CASCADE_FILE,
		RecognizerFile:      config.RECOGNIZER_FILE,
		EmotionModel:        config.EMOTION_MODEL,
		People:              people,
		ConfidenceScale:     config.CONFIDENCE_SCALE,
		ConfidenceThreshold: config.CONFIDENCE_THRESHOLD,
		Cadence: camera.Cadence{
			EmotionEvery: config.EMOTION_EVERY,
			LogEvery:     config.LOG_EVERY,
		},
		Append: models.AppendLog,
	})
}

func main() {
	db.Init()
	models.Init()
	handlers.Init(camera.NewManager(startSession))
	go handlers.EmotionNotifier()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/video_feed", "/snapshot", "/ws/emotion"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	router.GET("/", handlers.Index)
	// Live video
	router.GET("/video_feed", handlers.VideoFeed)
	router.GET("/snapshot", handlers.Snapshot)
	// Session control
	router.GET("/start_feed", handlers.StartFeed)
	router.GET("/stop_feed", handlers.StopFeed)
	// Log store queries
	router.GET("/get_emotion", handlers.GetEmotion)
	router.GET("/get_user_log", handlers.GetUserLog)
	router.GET("/emotion_stats", handlers.EmotionStats)
	// Push + introspection
	router.GET("/ws/emotion", handlers.EmotionSocket)
	router.GET("/status", handlers.Status)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
