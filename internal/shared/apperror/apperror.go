package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError erreur applicative typée, portée jusqu'au contrôleur qui la
// convertit en réponse HTTP standardisée {"error": ..., "details": {...}}
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFound ressource absente : 404 en nommant le type de ressource
func NotFound(resource, message string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
		Details:    map[string]interface{}{"resource": resource},
	}
}

// Validation champ manquant ou mal formé : 400 avec messages par champ
func Validation(message string, champs map[string]string) *AppError {
	details := map[string]interface{}{"code": "VALIDATION_ERROR"}
	if len(champs) > 0 {
		details["champs"] = champs
	}
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

// Denied refus d'autorisation : 403 avec message générique, sans détail
// sur la ressource visée
func Denied() *AppError {
	return &AppError{
		Code:       "ACCESS_DENIED",
		Message:    "Accès refusé",
		StatusCode: http.StatusForbidden,
		Details:    map[string]interface{}{"code": "ACCESS_DENIED"},
	}
}

// Conflict référence étrangère absente ou contrainte d'intégrité violée
func Conflict(message string, details map[string]interface{}) *AppError {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["code"] = "INTEGRITY_ERROR"
	return &AppError{
		Code:       "INTEGRITY_ERROR",
		Message:    message,
		StatusCode: http.StatusConflict,
		Details:    details,
	}
}

// Unauthorized identifiants ou token invalides : 401
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Details:    map[string]interface{}{"code": "UNAUTHORIZED"},
	}
}

// Internal erreur technique non classifiée : 500
func Internal(message string) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Details:    map[string]interface{}{"code": "INTERNAL_ERROR"},
	}
}

// As extrait une *AppError d'une chaîne d'erreurs wrappées
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf retourne le statut HTTP d'une erreur, 500 par défaut
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
