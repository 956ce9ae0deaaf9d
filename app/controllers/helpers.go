package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// decodeBody decodes and validates a JSON request body. On failure it
// writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		sendValidationErrors(w, err)
		return false
	}
	return true
}

// sendValidationErrors reports field-level validation failures as a 400
// with one message per offending field.
func sendValidationErrors(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages[fe.Field()] = fieldMessage(fe)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{"errors": messages})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must be specified.", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s has non-alphanumeric characters.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must have %s or more characters.", fe.Field(), fe.Param())
	case "eqfield":
		return "The passwords do not match."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// handleServiceError maps service and repository errors onto HTTP
// responses. Internal detail stays in the log, never in the body.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, services.ErrConflict):
		sendError(w, http.StatusConflict, "A user with the same username already exists.")
	case errors.Is(err, services.ErrUnauthorized):
		sendError(w, http.StatusUnauthorized, "Incorrect password.")
	case errors.Is(err, services.ErrForbidden):
		sendError(w, http.StatusForbidden, "Error 403: Forbidden")
	case errors.Is(err, services.ErrInconsistent):
		log.Printf("inconsistent state reported to client: %v", err)
		sendError(w, http.StatusInternalServerError, "Server error. Please try again.")
	default:
		log.Printf("unexpected error: %v", err)
		sendError(w, http.StatusInternalServerError, "Server error. Please try again.")
	}
}

// actingIdentity returns the identity established by the authentication
// middleware, rejecting the request if it is absent.
func actingIdentity(w http.ResponseWriter, r *http.Request) (services.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r)
	if !ok {
		sendError(w, http.StatusForbidden, "Invalid JSON web token.")
		return services.Identity{}, false
	}
	return identity, true
}
