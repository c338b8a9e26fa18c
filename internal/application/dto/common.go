package dto

// ErrorResponse cuerpo de error HTTP: {"error": <mensaje>}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationDetail detalle de validación con errores por campo, con la misma
// forma plana que emitía el backend original (formErrors + fieldErrors).
type ValidationDetail struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// HasErrors indica si hay algún error acumulado.
func (d *ValidationDetail) HasErrors() bool {
	return len(d.FormErrors) > 0 || len(d.FieldErrors) > 0
}

// AddFieldError acumula un error sobre un campo concreto.
func (d *ValidationDetail) AddFieldError(field, message string) {
	if d.FieldErrors == nil {
		d.FieldErrors = map[string][]string{}
	}
	d.FieldErrors[field] = append(d.FieldErrors[field], message)
}

// NewValidationDetail crea un detalle vacío con los slices inicializados,
// para que el JSON resultante siempre incluya ambas claves.
func NewValidationDetail() *ValidationDetail {
	return &ValidationDetail{
		FormErrors:  []string{},
		FieldErrors: map[string][]string{},
	}
}

// ValidationErrorResponse cuerpo de error 400: {"error": {formErrors, fieldErrors}}.
type ValidationErrorResponse struct {
	Error *ValidationDetail `json:"error"`
}
