package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/repository"
	"github.com/edukshare-max/fastapi-backend/internal/service"
)

// AuditHandler serves the audit trail queries for the admin panel.
type AuditHandler struct{ svc service.AdminService }

func NewAuditHandler(svc service.AdminService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// Listar handles GET /auth/audit-logs?usuario=&accion=&limit=
func (h *AuditHandler) Listar(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	if limit > repository.StatsAuditLimit {
		limit = repository.StatsAuditLimit
	}

	logs, err := h.svc.ListAuditLogs(c.Request.Context(), repository.AuditFilter{
		Usuario: c.Query("usuario"),
		Accion:  c.Query("accion"),
		Limit:   limit,
	})
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
		"count":   len(logs),
	})
}

// Stats handles GET /auth/audit-logs/stats
// Aggregates the most recent entries for the panel dashboard.
func (h *AuditHandler) Stats(c *gin.Context) {
	stats, err := h.svc.AuditStats(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
