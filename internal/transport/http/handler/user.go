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

type UserHandler struct {
	uc     *usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger.With("component", "user_handler")}
}

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"  binding:"required"`
}

// updateUserRequest is sparse: nil (absent or null) means "leave unchanged".
type updateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.uc.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, h.logger, "list users", err)
		return
	}

	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	ctx.JSON(http.StatusOK, items)
}

func (h *UserHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	user, err := h.uc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, "get user", err)
		return
	}
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Create(ctx *gin.Context) {
	var req createUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := h.uc.CreateUser(ctx.Request.Context(), usecase.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		respondError(ctx, h.logger, "create user", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("user", "create").Inc()
	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := h.uc.UpdateUser(ctx.Request.Context(), id, usecase.UpdateUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		respondError(ctx, h.logger, "update user", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("user", "update").Inc()
	ctx.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.uc.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, h.logger, "delete user", err)
		return
	}

	metrics.EntityOpsTotal.WithLabelValues("user", "delete").Inc()
	ctx.Status(http.StatusNoContent)
}
