package util

import (
	"errors"
	"net/http"

	"swift_elearning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response adalah amplop JSON seragam untuk semua endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// DomainError memetakan error sentinel ke status HTTP sesuai
// taksonominya; error tak dikenal dianggap kegagalan internal.
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInactiveAccount),
		errors.Is(err, ErrInvalidAdmin):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrNotMentor),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrMaxAttemptReached):
		Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrMateriExists),
		errors.Is(err, ErrTugasExists):
		Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrVideoNotFound),
		errors.Is(err, ErrTugasNotFound),
		errors.Is(err, ErrActivationFailed):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMateriNotFound),
		errors.Is(err, ErrTugasDetached),
		errors.Is(err, ErrNoTugasOnVideo),
		errors.Is(err, ErrAnswerLengthMismatch),
		errors.Is(err, ErrInvalidMapel),
		errors.Is(err, ErrInvalidSoal):
		Error(c, http.StatusBadRequest, err.Error())
	default:
		LogInternalError(c, err)
	}
}
