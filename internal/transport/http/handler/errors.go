package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/taskboard/api/internal/domain"
)

const errInternalServer = "Internal server error"

// errorResponse is the wire shape for every failure.
type errorResponse struct {
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func newErrorResponse(message string, details map[string]string) errorResponse {
	return errorResponse{
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// respondError performs the single taxonomy-to-HTTP translation. Unclassified
// errors are logged and surface as a generic 500 with no internal detail.
func respondError(ctx *gin.Context, logger *slog.Logger, op string, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.ErrorContext(ctx.Request.Context(), op, "error", err)
		ctx.JSON(http.StatusInternalServerError, newErrorResponse(errInternalServer, nil))
		return
	}

	switch de.Kind {
	case domain.KindNotFound:
		ctx.JSON(http.StatusNotFound, newErrorResponse(de.Message, nil))
	case domain.KindConflict:
		ctx.JSON(http.StatusConflict, newErrorResponse(de.Message, nil))
	case domain.KindInvalidRequest:
		ctx.JSON(http.StatusBadRequest, newErrorResponse(de.Message, de.Fields))
	default:
		logger.ErrorContext(ctx.Request.Context(), op, "error", err)
		ctx.JSON(http.StatusInternalServerError, newErrorResponse(errInternalServer, nil))
	}
}

// respondBindError converts gin binding failures into the invalid-request
// shape, with a field -> message map when the failure came from struct tags.
func respondBindError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = bindFailureMessage(fe)
		}
		ctx.JSON(http.StatusBadRequest, newErrorResponse("Validation failed", fields))
		return
	}
	ctx.JSON(http.StatusBadRequest, newErrorResponse("Invalid request body", nil))
}

func bindFailureMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
