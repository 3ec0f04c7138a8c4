package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse: стандартный формат ошибки в ответе API
type ErrorResponse struct {
	Error   string `json:"error"`   // код ошибки (см. codes.go)
	Message string `json:"message"` // сообщение для пользователя
}

// RespondWithError отправляет стандартный ответ с ошибкой
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Короткие помощники для частых случаев

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Требуется вход в систему"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Недостаточно прав для этого действия"
	}
	RespondWithError(c, http.StatusForbidden, AuthzForbidden, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Произошла ошибка сервера. Повторите попытку позже"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationError: ошибка валидации с проблемами по каждому полю,
// чтобы форма в админке могла подсветить конкретные поля
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: "Проверьте правильность заполнения полей",
		Fields:  fields,
	})
}
