/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jl91/aws-gateway-editor/internal/constants"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, interface{}) {
	return status, NewErrorResponse(status, http.StatusText(status), message)
}

// FormatValidationError converts validator errors to user-friendly messages (public API)
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

// formatValidationError converts ValidationErrors to user-friendly messages (internal)
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"Name":           "name",
		"Version":        "version",
		"Description":    "description",
		"OpenAPIVersion": "OpenAPI version",
		"Method":         "method",
		"Path":           "path",
		"OperationID":    "operation ID",
		"Summary":        "summary",
		"TargetURL":      "target URL",
		"EndpointIDs":    "endpoint IDs",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and error response
func GetErrorResponse(err error) (int, interface{}) {
	// First check if it's a validation error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		userFriendlyMessage := formatValidationError(validationErrors)
		return makeError(http.StatusBadRequest, userFriendlyMessage)
	}

	// Handle domain/business logic errors
	switch {
	// Gateway configuration errors
	case errors.Is(err, constants.ErrConfigNotFound):
		return makeError(http.StatusNotFound, err.Error())
	case errors.Is(err, constants.ErrDuplicateConfigContent):
		return makeError(http.StatusConflict, err.Error())
	case errors.Is(err, constants.ErrInvalidOpenAPIVersion):
		return makeError(http.StatusBadRequest, err.Error())

	// Endpoint errors
	case errors.Is(err, constants.ErrEndpointNotFound):
		return makeError(http.StatusNotFound, err.Error())
	case errors.Is(err, constants.ErrDuplicateEndpoint):
		return makeError(http.StatusConflict, err.Error())
	case errors.Is(err, constants.ErrInvalidEndpointIDs):
		return makeError(http.StatusBadRequest, err.Error())

	// Import errors
	case errors.Is(err, constants.ErrUnsupportedImportFormat):
		return makeError(http.StatusBadRequest, err.Error())
	case errors.Is(err, constants.ErrNoSpecInArchive):
		return makeError(http.StatusBadRequest, err.Error())
	case errors.Is(err, constants.ErrInvalidOpenAPIDocument):
		return makeError(http.StatusBadRequest, err.Error())

	// Export errors
	case errors.Is(err, constants.ErrUnsupportedExportFormat):
		return makeError(http.StatusBadRequest, err.Error())

	// Default case for unknown errors
	default:
		return makeError(http.StatusInternalServerError, "Internal Server Error")
	}
}
