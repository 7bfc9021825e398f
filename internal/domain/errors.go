package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoSession = errors.New("no hay sesión activa")
	ErrNotFound  = errors.New("recurso no encontrado")
)

// ValidationError fallo local de validación, previo a cualquier llamada de red.
// Fields mapea nombre de campo -> mensaje, para mostrarse junto al formulario.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye el error con un primer campo inválido.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add agrega otro campo inválido y devuelve el mismo error (encadenable).
func (e *ValidationError) Add(field, msg string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "entrada inválida"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "entrada inválida: " + strings.Join(parts, "; ")
}

// TransportError fallo de red o respuesta HTTP no-2xx del backend.
// Status 0 significa que la red no fue alcanzable (no hubo respuesta HTTP).
type TransportError struct {
	Status  int
	Code    string // código de error del backend, si lo envió
	Message string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return "red no disponible: " + e.Message
	}
	if e.Code != "" {
		return fmt.Sprintf("HTTP %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// DecodeError la respuesta del backend no tiene la forma esperada.
type DecodeError struct {
	Op  string // operación que decodificaba, ej. "customers.list"
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("respuesta inesperada en %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsStatus informa si err es un TransportError con el status HTTP dado.
func IsStatus(err error, status int) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Status == status
}
