package handlers

import (
	"log"
	"net/http"

	"facelog/camera"

	"github.com/gin-gonic/gin"
)

// Index serves the front page and makes sure a capture session is live,
// mirroring the original behavior of starting the camera on first visit.
func Index(c *gin.Context) {
	_, err := sessions.Start()
	if err != nil {
		log.Printf("Session start failed: %v", err)
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{"CameraOn": err == nil})
}

// StartFeed starts a capture session. Idempotent: if one is already
// running its state is returned unchanged.
func StartFeed(c *gin.Context) {
	session, err := sessions.Start()
	if err != nil {
		log.Printf("Session start failed: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.State().String()})
}

// StopFeed releases the camera and clears the session. Idempotent.
func StopFeed(c *gin.Context) {
	sessions.Stop()
	c.JSON(http.StatusOK, gin.H{"state": camera.StateStopped.String()})
}
