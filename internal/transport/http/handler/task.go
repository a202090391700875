package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/metrics"
	"github.com/taskboard/api/internal/usecase"
)

type TaskHandler struct {
	uc     *usecase.TaskUsecase
	logger *slog.Logger
}

func NewTaskHandler(uc *usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, logger: logger.With("component", "task_handler")}
}

type createTaskRequest struct {
	Title       string        `json:"title"  binding:"required"`
	Description *string       `json:"description"`
	Status      domain.Status `json:"status"`
	UserID      string        `json:"userId" binding:"required"`
}

// updateTaskRequest is sparse: nil (absent or null) means "leave unchanged".
type updateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Status      *domain.Status `json:"status"`
	UserID      *string        `json:"userId"`
}

type updateTaskStatusRequest struct {
	Status domain.Status `json:"status" binding:"required"`
}

type taskResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Status      domain.Status `json:"status"`
	UserID      string        `json:"userId"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (h *TaskHandler) List(ctx *gin.Context) {
	tasks, err := h.uc.ListTasks(ctx.Request.Context(), ctx.Query("userId"))
	if err != nil {
		respondError(ctx, h.logger, "list tasks", err)
		return
	}

	items := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskResponse(t)
	}
	ctx.JSON(http.StatusOK, items)
}

func (h *TaskHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	task, err := h.uc.GetTask(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, "get task", err)
		return
	}
	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	var req createTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	task, err := h.uc.CreateTask(ctx.Request.Context(), usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      req.UserID,
	})
	if err != nil {
		respondError(ctx, h.logger, "create task", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("task", "create").Inc()
	ctx.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	task, err := h.uc.UpdateTask(ctx.Request.Context(), id, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      req.UserID,
	})
	if err != nil {
		respondError(ctx, h.logger, "update task", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("task", "update").Inc()
	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateTaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	task, err := h.uc.UpdateTaskStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		respondError(ctx, h.logger, "update task status", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("task", "update_status").Inc()
	ctx.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.uc.DeleteTask(ctx.Request.Context(), id); err != nil {
		respondError(ctx, h.logger, "delete task", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("task", "delete").Inc()
	ctx.Status(http.StatusNoContent)
}
