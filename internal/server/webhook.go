// Package server receives SendSeven webhook deliveries and hands matching
// events to connected host sessions.
package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"sendseven/internal/trigger"
	"sendseven/internal/types"
)

// Subscription binds one workflow to the event it listens for.
type Subscription struct {
	WorkflowID string
	Event      string
	Secret     string
}

// WebhookServer accepts deliveries at /hook/:workflow and dispatches them.
type WebhookServer struct {
	hub *Hub

	mu   sync.RWMutex
	subs map[string]Subscription
}

// NewWebhookServer creates a webhook server over the given hub.
func NewWebhookServer(hub *Hub) *WebhookServer {
	return &WebhookServer{
		hub:  hub,
		subs: make(map[string]Subscription),
	}
}

// Subscribe registers (or replaces) a workflow's subscription.
func (s *WebhookServer) Subscribe(sub Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.WorkflowID] = sub
}

// Unsubscribe removes a workflow's subscription.
func (s *WebhookServer) Unsubscribe(workflowID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, workflowID)
}

func (s *WebhookServer) subscription(workflowID string) (Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[workflowID]
	return sub, ok
}

// Router builds the gin engine serving the webhook endpoints.
func (s *WebhookServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/events", func(c *gin.Context) {
		s.hub.ServeWs(c.Writer, c.Request)
	})
	r.POST("/hook/:workflow", s.handleDelivery)

	return r
}

// ListenAndServe starts the HTTP server.
func (s *WebhookServer) ListenAndServe(addr string) error {
	return s.Router().Run(addr)
}

func (s *WebhookServer) handleDelivery(c *gin.Context) {
	workflowID := c.Param("workflow")

	sub, ok := s.subscription(workflowID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown workflow " + workflowID})
		return
	}

	var delivery types.Delivery
	if err := c.ShouldBindJSON(&delivery); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	// TODO: verify x-sendseven-signature once SendSeven documents the
	// signing scheme; the header only gets logged for now.
	if sig := c.GetHeader("x-sendseven-signature"); sig != "" {
		log.Printf("delivery %s carries signature header (unverified)", delivery.EventID)
	}

	event := trigger.Dispatch(delivery, sub.Event)
	if event == nil {
		// The delivery is acknowledged but produces no workflow output.
		c.JSON(http.StatusOK, gin.H{"received": true, "matched": false})
		return
	}

	s.hub.NotifyEvent(workflowID, event)
	c.JSON(http.StatusOK, gin.H{"received": true, "matched": true, "event": event})
}
