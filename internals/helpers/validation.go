package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator singleton; nama field diambil dari tag json.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

// ValidateStruct jalankan validator lalu kembalikan map field -> pesan (nil kalau lolos).
func ValidateStruct(v any) map[string][]string {
	if err := Validator().Struct(v); err != nil {
		return ValidationErrors(err)
	}
	return nil
}

func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ves {
		field := fe.Field()
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return fmt.Sprintf("minimal %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksimal %s", fe.Param())
	case "gte":
		return fmt.Sprintf("harus >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("harus <= %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("harus salah satu dari: %s", fe.Param())
	case "uuid", "uuid4":
		return "harus UUID yang valid"
	case "datetime":
		return fmt.Sprintf("format tanggal harus %s", fe.Param())
	default:
		return fmt.Sprintf("tidak valid (%s)", fe.Tag())
	}
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
