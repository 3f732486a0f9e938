package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmma/lifeskills/internal/app"
	"github.com/pmma/lifeskills/internal/generator"
	"github.com/pmma/lifeskills/internal/lifeskill"
	"github.com/pmma/lifeskills/internal/logger"
)

// Handler holds the HTTP handlers for the API.
type Handler struct {
	app        *app.App
	log        *logger.Logger
	genTimeout time.Duration
}

// NewHandler creates a Handler. genTimeout bounds the upstream generation
// call; zero means no timeout.
func NewHandler(a *app.App, log *logger.Logger, genTimeout time.Duration) *Handler {
	return &Handler{app: a, log: log, genTimeout: genTimeout}
}

// HealthCheck reports process liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GenerateLifeSkill handles POST /api/generate-lifeskill.
//
// 400 with {"error": "Topic is required"} when the topic is missing or
// blank; 200 with {"success": true, "lifeSkill": ...} on success; 500 with
// {"error": ..., "message": ..., "fallback": true} when generation fails.
func (h *Handler) GenerateLifeSkill(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	ctx := c.Request.Context()
	if h.genTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.genTimeout)
		defer cancel()
	}

	module, err := h.app.Generate(ctx, req)
	if err != nil {
		h.log.Error("generation request failed", "topic", req.Topic, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Failed to generate life skill content",
			"message":  err.Error(),
			"fallback": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"lifeSkill": module,
	})
}

// ListLifeSkills handles GET /api/lifeskills: the static set merged with
// stored modules.
func (h *Handler) ListLifeSkills(c *gin.Context) {
	merged := h.app.LoadLifeSkills(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"lifeSkills": merged})
}

// GetLifeSkill handles GET /api/lifeskills/:slug.
func (h *Handler) GetLifeSkill(c *gin.Context) {
	slug := c.Param("slug")

	for _, m := range h.app.LoadLifeSkills(c.Request.Context()) {
		if m.Slug == slug {
			c.JSON(http.StatusOK, gin.H{
				"lifeSkill":  m,
				"appearance": lifeskill.AppearanceFor(m.ID),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Life skill not found"})
}

// RecordProgress handles POST /api/progress.
func (h *Handler) RecordProgress(c *gin.Context) {
	var record lifeskill.Progress
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progress record"})
		return
	}
	if record.UserID == "" || record.LifeSkillID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and lifeSkillId are required"})
		return
	}

	if record.LastActivity.IsZero() {
		record.LastActivity = time.Now()
	}

	h.app.RecordProgress(record)

	merged := h.app.State.ProgressFor(record.UserID, record.LifeSkillID)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"progress": merged,
	})
}

// GetProgress handles GET /api/progress/:userId.
func (h *Handler) GetProgress(c *gin.Context) {
	userID := c.Param("userId")

	records := make([]lifeskill.Progress, 0)
	for _, p := range h.app.State.State().Progress {
		if p.UserID == userID {
			records = append(records, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"progress": records})
}
