package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors mengubah validator.ValidationErrors menjadi map field → pesan,
// siap dikirim lewat JsonValidationError.
func FormatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"Format tidak valid."}
		return out
	}

	for _, fieldErr := range ve {
		field := strings.ToLower(fieldErr.Field())
		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "min":
			msg = field + " harus minimal " + fieldErr.Param() + " karakter."
		case "max":
			msg = field + " harus kurang dari " + fieldErr.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari: " + fieldErr.Param() + "."
		case "url":
			msg = field + " harus berupa URL yang valid."
		case "uuid":
			msg = field + " harus berupa UUID yang valid."
		default:
			msg = field + ": format tidak valid."
		}
		out[field] = append(out[field], msg)
	}

	return out
}
