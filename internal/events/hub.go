/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package events

import (
	"sync"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the payload broadcast to every subscribed client when a
// configuration changes
type Event struct {
	Type      string    `json:"type"`
	ConfigID  string    `json:"configId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub fans configuration change events out to websocket subscribers. It keeps
// an in-memory registry of connections; there is no persistence or replay, a
// client only sees events published while it is connected.
type Hub struct {
	mu             sync.RWMutex
	clients        map[string]*client
	maxConnections int
}

type client struct {
	id   string
	conn *websocket.Conn
	// send serializes writes; gorilla/websocket allows one concurrent writer
	send chan Event
	done chan struct{}
}

// NewHub creates a hub with a cap on concurrent subscriber connections
func NewHub(maxConnections int) *Hub {
	if maxConnections <= 0 {
		maxConnections = 1000
	}
	return &Hub{
		clients:        make(map[string]*client),
		maxConnections: maxConnections,
	}
}

// Subscribe registers a websocket connection and starts its writer goroutine.
// The connection is owned by the hub from this point on: it is closed when
// the client drops or when the hub evicts it.
func (h *Hub) Subscribe(conn *websocket.Conn) error {
	h.mu.Lock()
	if len(h.clients) >= h.maxConnections {
		h.mu.Unlock()
		conn.Close()
		return ErrTooManyConnections
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan Event, 16),
		done: make(chan struct{}),
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	go h.writeLoop(c)
	go h.readLoop(c)

	utils.LogInfo("event subscriber connected: " + c.id)
	return nil
}

// Publish broadcasts an event to every subscriber. Slow subscribers whose
// send buffer is full are dropped rather than allowed to stall the caller.
func (h *Hub) Publish(eventType, configID string) {
	event := Event{
		Type:      eventType,
		ConfigID:  configID,
		Timestamp: time.Now(),
	}

	h.mu.RLock()
	var stalled []*client
	for _, c := range h.clients {
		select {
		case c.send <- event:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		utils.LogWarning("dropping stalled event subscriber: " + c.id)
		h.remove(c)
	}
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

// SubscriberCount returns the number of connected subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case event := <-c.send:
			if err := c.conn.WriteJSON(event); err != nil {
				h.remove(c)
				return
			}
		case <-c.done:
			return
		}
	}
}

// readLoop drains inbound frames so close/ping control messages are
// processed; subscribers are not expected to send data
func (h *Hub) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.remove(c)
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, present := h.clients[c.id]
	if present {
		delete(h.clients, c.id)
		close(c.done)
	}
	h.mu.Unlock()

	if present {
		c.conn.Close()
		utils.LogInfo("event subscriber disconnected: " + c.id)
	}
}
