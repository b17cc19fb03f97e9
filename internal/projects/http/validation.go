package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	codeTooSmall    = "too_small"
	codeInvalidType = "invalid_type"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var issueMessages = map[string]string{
	"title.required":  "Title is required",
	"description.min": "Description must be at least 10 characters",
}

// validateStruct returns the field-level issues for v, or nil when it is valid.
func validateStruct(v any) []Issue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Path: []string{}, Code: codeInvalidType, Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := issueMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		issues = append(issues, Issue{
			Path:    []string{fe.Field()},
			Code:    codeTooSmall,
			Message: msg,
		})
	}
	return issues
}

func bodyIssue(err error) []Issue {
	return []Issue{{Path: []string{}, Code: codeInvalidType, Message: "Invalid request body: " + err.Error()}}
}
