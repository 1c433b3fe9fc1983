package serverutils

import (
	"cornell-notepad-be/internal/apperror"

	"github.com/google/uuid"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

type ErrorBody struct {
	Success bool                               `json:"success"`
	Code    int                                `json:"code"`
	Message string                             `json:"message"`
	Fields  map[string]apperror.FieldViolation `json:"fields,omitempty"`
	Ids     []uuid.UUID                        `json:"ids,omitempty"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
	}
}
