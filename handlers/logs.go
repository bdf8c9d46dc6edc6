package handlers

import (
	"net/http"

	"facelog/camera"
	"facelog/models"

	"github.com/gin-gonic/gin"
)

// GetEmotion returns the single most recent emotion label, or the
// neutral default when no session is active.
func GetEmotion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"emotion": currentEmotion()})
}

// GetUserLog returns the latest persisted sightings, newest first.
func GetUserLog(c *gin.Context) {
	records, err := models.RecentLogs(recentLogCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, records)
}

// EmotionStats returns the share of each emotion label among the latest
// sightings. An empty store yields 0 for every label, not an error.
func EmotionStats(c *gin.Context) {
	observed, err := models.RecentEmotions(recentLogCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Percentages(camera.EmotionLabels, observed))
}
