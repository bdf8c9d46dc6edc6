package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"facelog/utils"

	"github.com/gin-gonic/gin"
)

// Snapshot returns a single JPEG still of the latest annotated frame.
// With ?size=N the frame is re-encoded as a thumbnail bounded by N.
func Snapshot(c *gin.Context) {
	session := sessions.Current()
	if session == nil {
		c.JSON(http.StatusServiceUnavailable, NoSessionResponse)
		return
	}
	frame, ok := session.Frames().Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, Response{Error: "no frame yet"})
		return
	}

	sizeParam := c.Query("size")
	if sizeParam == "" {
		c.Data(http.StatusOK, "image/jpeg", frame)
		return
	}
	size, err := strconv.Atoi(sizeParam)
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, Response{Error: "invalid size"})
		return
	}
	thumb := bytes.Buffer{}
	if _, err := utils.CreateThumb(uint(size), bytes.NewReader(frame), &thumb); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", thumb.Bytes())
}
