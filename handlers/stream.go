package handlers

import (
	"log"
	"net/http"
	"time"

	"facelog/camera"
	"facelog/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const streamBoundary = "frame"

// How often a stream client polls the frame buffer. Clients that fall
// behind simply observe a newer frame on the next poll - dropped frames
// are implicit and fine.
const streamInterval = 66 * time.Millisecond

// VideoFeed serves an unbounded multipart stream of JPEG frames pulled
// from the shared frame buffer. It runs until the client disconnects or
// the capture session stops.
func VideoFeed(c *gin.Context) {
	session := sessions.Current()
	if session == nil {
		c.JSON(http.StatusServiceUnavailable, NoSessionResponse)
		return
	}

	clientID := uuid.NewString()
	log.Printf("Stream client %s connected from %s", clientID, c.ClientIP())
	metrics.StreamClients.Inc()
	defer func() {
		metrics.StreamClients.Dec()
		log.Printf("Stream client %s disconnected", clientID)
	}()

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary="+streamBoundary)
	c.Header("Cache-Control", "no-cache")

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		frame, ok := session.Frames().Snapshot()
		if !ok {
			// Closed buffer means the session stopped; an empty one
			// means the first frame is not published yet.
			if session.State() != camera.StateRunning {
				return
			}
		} else {
			if _, err := c.Writer.Write([]byte("--" + streamBoundary + "\r\nContent-Type: image/jpeg\r\n\r\n")); err != nil {
				return
			}
			if _, err := c.Writer.Write(frame); err != nil {
				return
			}
			if _, err := c.Writer.Write([]byte("\r\n")); err != nil {
				return
			}
			c.Writer.Flush()
		}

		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
