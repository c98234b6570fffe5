package core

import (
	"errors"
	"net/http"
)

// ErrorStatus maps a service error to its HTTP status
func ErrorStatus(err error) int {
	switch {
	case errors.As(err, new(ErrorNotFound)):
		return http.StatusNotFound
	case errors.As(err, new(ErrorAlreadyExists)):
		return http.StatusConflict
	case errors.As(err, new(ErrorOptimisticLocking)):
		return http.StatusConflict
	case errors.As(err, new(ErrorInvalidArgument)):
		return http.StatusBadRequest
	case errors.As(err, new(ErrorAlreadyDeleted)):
		return http.StatusGone
	case errors.As(err, new(ErrorPermissionDenied)):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
