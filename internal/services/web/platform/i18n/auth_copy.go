package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AuthCopy holds translatable copy for auth surfaces.
type AuthCopy struct {
	SignIn          string
	SignUp          string
	Email           string
	Password        string
	ErrInvalidCreds string
	ErrEmailTaken   string
	ErrWeakPassword string
	ErrInvalidEmail string
	SignedOut       string
}

// Auth returns localized auth copy for the provided language tag.
func Auth(tag language.Tag) AuthCopy {
	loc := message.NewPrinter(tag)
	return AuthCopy{
		SignIn:          localizeWithFallback(loc, "web.auth.sign_in", "Iniciar sesión"),
		SignUp:          localizeWithFallback(loc, "web.auth.sign_up", "Crear cuenta"),
		Email:           localizeWithFallback(loc, "web.auth.email", "Correo electrónico"),
		Password:        localizeWithFallback(loc, "web.auth.password", "Contraseña"),
		ErrInvalidCreds: localizeWithFallback(loc, "errors.invalid_credentials", "Correo o contraseña incorrectos."),
		ErrEmailTaken:   localizeWithFallback(loc, "errors.email_taken", "Ya existe una cuenta con ese correo."),
		ErrWeakPassword: localizeWithFallback(loc, "errors.weak_password", "La contraseña debe tener al menos 8 caracteres."),
		ErrInvalidEmail: localizeWithFallback(loc, "errors.invalid_email", "Ingresa un correo electrónico válido."),
		SignedOut:       localizeWithFallback(loc, "web.auth.signed_out", "Has cerrado tu sesión."),
	}
}
