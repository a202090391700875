package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskboard/api/internal/health"
)

type HealthHandler struct {
	checker *health.Checker
}

func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check reports dependency health; 503 when any dependency is down.
func (h *HealthHandler) Check(ctx *gin.Context) {
	result := h.checker.Readiness(ctx.Request.Context())

	status := http.StatusOK
	if result.Status != health.StatusUp {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, result)
}
