package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-process-scheduler/backend/internal/engine"
	"ai-process-scheduler/backend/internal/storage"
)

type Handlers struct {
	engine  *engine.Engine
	history *storage.History
	hub     *Hub
}

func NewHandlers(e *engine.Engine, h *storage.History, hub *Hub) *Handlers {
	return &Handlers{engine: e, history: h, hub: hub}
}

func (h *Handlers) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// GetProcesses runs one scheduling cycle over a fresh snapshot and returns
// the ordered, metric-annotated batch with its policy-family label.
func (h *Handlers) GetProcesses(c *gin.Context) {
	res, err := h.engine.RunCycle(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"algorithm": res.Algorithm,
		"processes": res.Processes,
	})
}

// Actuate runs one cycle with OS actuation enabled. Guarded by auth: this
// path changes real scheduling classes.
func (h *Handlers) Actuate(c *gin.Context) {
	res, err := h.engine.RunCycle(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"algorithm": res.Algorithm,
		"cycle_id":  res.CycleID,
		"processes": res.Processes,
	})
}

func (h *Handlers) GetHistory(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History storage not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	cycles, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": cycles, "total": len(cycles)})
}

func (h *Handlers) Live(c *gin.Context) {
	h.hub.HandleWebSocket(c.Writer, c.Request)
}
