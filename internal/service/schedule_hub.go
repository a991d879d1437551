package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"exam_admin_backend/pkg/logger"
	"exam_admin_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	scheduleChannel = "schedule_events"
)

// Schedule event types
const (
	EventExamReminder = "EXAM_REMINDER"
	EventNotification = "NOTIFICATION"
	EventScheduleSync = "SCHEDULE_SYNC"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ScheduleEvent is a broadcast message pushed to connected candidates:
// exam-day reminders and fresh notifications.
type ScheduleEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ScheduleClient is one websocket subscriber. Inbound traffic is limited
// and otherwise ignored; the channel is push only.
type ScheduleClient struct {
	Hub     *ScheduleHub
	Conn    *websocket.Conn
	Send    chan []byte
	Limiter *rate.Limiter
}

func (c *ScheduleClient) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("websocket unexpected close", zap.Error(err))
			}
			break
		}
		if !c.Limiter.Allow() {
			continue
		}
	}
}

func (c *ScheduleClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if n := len(c.Send); n > 0 {
				for i := 0; i < n; i++ {
					w.Write(<-c.Send)
				}
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ScheduleHub fans schedule events out to all local websocket clients.
// Events are published through redis so every instance behind a load
// balancer delivers the same stream.
type ScheduleHub struct {
	clients    map[*ScheduleClient]bool
	mu         sync.RWMutex
	register   chan *ScheduleClient
	unregister chan *ScheduleClient
	Redis      *redis.Client
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewScheduleHub(rdb *redis.Client) *ScheduleHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &ScheduleHub{
		clients:    make(map[*ScheduleClient]bool),
		register:   make(chan *ScheduleClient),
		unregister: make(chan *ScheduleClient),
		Redis:      rdb,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *ScheduleHub) Run() {
	pubsub := h.Redis.Subscribe(h.ctx, scheduleChannel)
	go func() {
		ch := pubsub.Channel()
		for msg := range ch {
			h.broadcastLocal([]byte(msg.Payload))
		}
	}()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			monitoring.ScheduleClients.Inc()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				monitoring.ScheduleClients.Dec()
			}
			h.mu.Unlock()

		case <-h.ctx.Done():
			pubsub.Close()
			return
		}
	}
}

// Publish sends an event to every connected client on every instance.
// Publish failures are logged; the event is best effort.
func (h *ScheduleHub) Publish(event ScheduleEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("failed to encode schedule event", zap.Error(err))
		return
	}
	if err := h.Redis.Publish(h.ctx, scheduleChannel, payload).Err(); err != nil {
		logger.Log.Error("failed to publish schedule event",
			zap.String("type", event.Type), zap.Error(err))
		return
	}
	monitoring.ScheduleEvents.WithLabelValues(event.Type).Inc()
}

func (h *ScheduleHub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

// Stop closes every client connection and halts the pubsub loop.
func (h *ScheduleHub) Stop() {
	h.cancel()

	h.mu.Lock()
	closed := 0
	for client := range h.clients {
		close(client.Send)
		delete(h.clients, client)
		closed++
	}
	h.mu.Unlock()

	monitoring.ScheduleClients.Set(0)
	logger.Log.Info("schedule hub stopped", zap.Int("closedConnections", closed))
}

// ServeScheduleWs upgrades an HTTP request into a schedule subscription.
func ServeScheduleWs(hub *ScheduleHub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &ScheduleClient{
		Hub:     hub,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
