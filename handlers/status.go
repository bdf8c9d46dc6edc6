package handlers

import (
	"net/http"
	"path/filepath"

	"facelog/camera"
	"facelog/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/sys/unix"
)

// Status reports the session state, connected clients and free disk
// space of the directory holding the log store.
func Status(c *gin.Context) {
	state := camera.StateStopped.String()
	if session := sessions.Current(); session != nil {
		state = session.State().String()
	}

	var freeBytes uint64
	dir := filepath.Dir(config.SQLITE_FILE)
	if dir == "" {
		dir = "."
	}
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err == nil {
		freeBytes = stat.Bavail * uint64(stat.Bsize)
	}

	c.JSON(http.StatusOK, gin.H{
		"session":        state,
		"socket_clients": SocketClientCount(),
		"free_disk":      freeBytes,
	})
}
