package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"facelog/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SendSocketFunc returns true if data was successfully sent
type SendSocketFunc func([]byte) bool

type ConnectedClient struct {
	fun SendSocketFunc
}

var connectedClients = cmap.New[*ConnectedClient]()

// EmotionSocket upgrades to a websocket and pushes the current emotion
// label whenever it changes, as an alternative to polling /get_emotion.
func EmotionSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer conn.Close()

	isConnected := true
	id := uuid.NewString()
	client := &ConnectedClient{}
	client.fun = func(data []byte) bool {
		if !isConnected {
			return false
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Println("write err:", err)
			isConnected = false
			return false
		}
		return true
	}
	connectedClients.Set(id, client)
	metrics.SocketClients.Inc()
	defer func() {
		connectedClients.Remove(id)
		metrics.SocketClients.Dec()
	}()

	// Send the current value right away so clients don't wait for a change.
	client.fun(emotionPayload(currentEmotion()))

	// Main read cycle
	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			isConnected = false
			break
		}
		if string(message) == "ping" {
			conn.WriteMessage(mt, []byte("pong"))
		}
	}
}

// SocketClientCount reports the connected emotion websocket clients.
func SocketClientCount() int {
	return connectedClients.Count()
}

func emotionPayload(emotion string) []byte {
	data, _ := json.Marshal(gin.H{"emotion": emotion})
	return data
}

// EmotionNotifier polls the live session once a second and broadcasts
// the emotion label to all websocket clients when it changes. Run it as
// a goroutine from main.
func EmotionNotifier() {
	last := ""
	for {
		time.Sleep(time.Second)
		emotion := currentEmotion()
		if emotion == last {
			continue
		}
		last = emotion
		data := emotionPayload(emotion)
		for item := range connectedClients.IterBuffered() {
			item.Val.fun(data)
		}
	}
}
