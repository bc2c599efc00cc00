// Package account valida los formularios de acceso igual que el cliente.
// No autentica a nadie: no hay backend de usuarios.
package account

import (
	"errors"
	"strings"
)

var ErrUnknownForm = errors.New("unknown form")

// Form identifica el formulario a validar.
type Form string

const (
	FormSignIn         Form = "sign-in"
	FormRegister       Form = "register"
	FormForgotPassword Form = "forgot-password"
)

// Credentials reúne todos los campos posibles; cada formulario usa los suyos.
type Credentials struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// FieldError describe un campo inválido.
type FieldError struct {
	Field   string
	Message string
}

type Result struct {
	Valid  bool
	Errors []FieldError
}

// Validate aplica las reglas del formulario. Devuelve ErrUnknownForm si form no existe.
func Validate(form Form, c Credentials) (Result, error) {
	var errs []FieldError

	switch form {
	case FormSignIn:
		errs = append(errs, checkEmail(c.Email)...)
		errs = append(errs, checkPassword(c.Password)...)
	case FormRegister:
		errs = append(errs, checkEmail(c.Email)...)
		errs = append(errs, checkPassword(c.Password)...)
		if c.Password != c.ConfirmPassword {
			errs = append(errs, FieldError{Field: "confirm_password", Message: "passwords do not match"})
		}
	case FormForgotPassword:
		errs = append(errs, checkEmail(c.Email)...)
	default:
		return Result{}, ErrUnknownForm
	}

	if errs == nil {
		errs = []FieldError{}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}, nil
}

func checkEmail(email string) []FieldError {
	if !strings.Contains(email, "@") {
		return []FieldError{{Field: "email", Message: "email must contain @"}}
	}
	return nil
}

func checkPassword(pw string) []FieldError {
	if pw == "" {
		return []FieldError{{Field: "password", Message: "password is required"}}
	}
	return nil
}
