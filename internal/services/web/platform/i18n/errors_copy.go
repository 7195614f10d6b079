package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrorsCopy holds translatable copy for error pages.
type ErrorsCopy struct {
	Generic         string
	NotFound        string
	Unauthorized    string
	InvalidInput    string
	BackHome        string
	ImageTooLarge   string
	ImageBadType    string
	UsernameTaken   string
	UsernameInvalid string
}

// Errors returns localized error copy for the provided language tag.
func Errors(tag language.Tag) ErrorsCopy {
	loc := message.NewPrinter(tag)
	return ErrorsCopy{
		Generic:         localizeWithFallback(loc, "errors.generic", "Algo salió mal. Inténtalo de nuevo."),
		NotFound:        localizeWithFallback(loc, "errors.not_found", "No encontramos esa página."),
		Unauthorized:    localizeWithFallback(loc, "errors.unauthorized", "Debes iniciar sesión para continuar."),
		InvalidInput:    localizeWithFallback(loc, "errors.invalid_input", "Revisa los campos marcados e inténtalo de nuevo."),
		BackHome:        localizeWithFallback(loc, "errors.back_home", "Volver al inicio"),
		ImageTooLarge:   localizeWithFallback(loc, "errors.image_too_large", "La imagen supera el tamaño máximo de 5 MB."),
		ImageBadType:    localizeWithFallback(loc, "errors.image_bad_type", "Formato de imagen no soportado. Usa JPG, PNG, GIF o WebP."),
		UsernameTaken:   localizeWithFallback(loc, "errors.username_taken", "Ese nombre de usuario ya está en uso."),
		UsernameInvalid: localizeWithFallback(loc, "errors.username_invalid", "El nombre de usuario debe tener entre 3 y 32 caracteres: minúsculas, números, punto, guion o guion bajo."),
	}
}

// ForStatus maps an HTTP status code to its localized message.
func (c ErrorsCopy) ForStatus(statusCode int) string {
	switch {
	case statusCode == http.StatusNotFound:
		return c.NotFound
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return c.Unauthorized
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return c.InvalidInput
	default:
		return c.Generic
	}
}
