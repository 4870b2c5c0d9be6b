package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"
)

// mapDomainError translates domain and use case failures into the HTTP
// error envelope. Every handler funnels its use case errors through here so
// the API reports violations consistently across resources.
func mapDomainError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	var notFoundErr *entities.NotFoundError
	var integrityErr *entities.IntegrityError

	switch {
	case errors.Is(err, usecase.ErrEmptyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &notFoundErr):
		msg := fmt.Sprintf("%s not found", capitalize(notFoundErr.Entity))
		return pkg.NewDomainErrorSimple("NOT_FOUND", msg, http.StatusNotFound)
	case errors.As(err, &integrityErr):
		return pkg.NewDomainErrorSimple("INTEGRITY_ERROR", integrityErr.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
