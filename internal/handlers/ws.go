package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/bhulekh-dev/bhulekh/internal/middleware"
	"github.com/bhulekh-dev/bhulekh/internal/types"
	"github.com/bhulekh-dev/bhulekh/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	projectClients   = make(map[uint]map[*websocket.Conn]bool)
	projectClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

// BroadcastRefresh tells every client watching the project to re-fetch the
// aggregate. Sent after each successful mutation so open tabs converge on the
// last write without polling.
func BroadcastRefresh(projectID uint) {
	projectClientsMu.RLock()
	clients, exists := projectClients[projectID]
	if !exists || len(clients) == 0 {
		projectClientsMu.RUnlock()
		return
	}

	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	projectClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			continue
		}

		err := conn.WriteJSON(map[string]interface{}{
			"type":       "refresh",
			"message":    "Project data updated",
			"project_id": projectID,
		})

		if err != nil {
			removeClient(projectID, conn)
			conn.Close()
		}
	}
}

// WebSocket upgrades the connection and keeps it registered for refresh
// pushes until the client goes away.
func WebSocket(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)

	if err != nil {
		middleware.Logger(ctx).Error("websocket upgrade failed", "error", err)
		return
	}

	projectClientsMu.Lock()
	if projectClients[projectID] == nil {
		projectClients[projectID] = make(map[*websocket.Conn]bool)
	}
	projectClients[projectID][conn] = true
	projectClientsMu.Unlock()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	defer func() {
		removeClient(projectID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func removeClient(projectID uint, conn *websocket.Conn) {
	projectClientsMu.Lock()
	defer projectClientsMu.Unlock()

	if clients, exists := projectClients[projectID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(projectClients, projectID)
		}
	}
}
