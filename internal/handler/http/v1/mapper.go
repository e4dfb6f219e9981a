package v1

import (
	"errors"
	"net/http"

	"github.com/blgguy/safetransport/internal/apperrors"
	"github.com/blgguy/safetransport/internal/models"
)

// errorStatus сопоставляет типизированные ошибки доменного слоя с HTTP-статусом
// и безопасным для клиента сообщением
func errorStatus(err error) (int, string) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Error()
	}

	var authErr *apperrors.AuthorizationError
	if errors.As(err, &authErr) {
		return http.StatusForbidden, authErr.Error()
	}

	// Детали шифрования и хранения наружу не отдаем
	return http.StatusInternalServerError, "internal server error"
}

// DTOToAlertModel преобразует DTO ручного оповещения в доменную модель
func DTOToAlertModel(input CreateAlertRequest) *models.SafetyAlert {
	return &models.SafetyAlert{
		AlertType:        models.AlertType(input.AlertType),
		Severity:         input.Severity,
		Message:          input.Message,
		LocationRadiusKm: input.LocationRadiusKm,
		ExpiresAt:        input.ExpiresAt,
	}
}
