package contact

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field error codes.
const (
	CodeRequired     = "required"
	CodeInvalidEmail = "invalid_email"
	CodeTooLong      = "too_long"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxTitleLength   = 200
	maxMessageLength = 5000
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldErrors maps form field names to error codes.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Err returns e as an error, or nil when empty.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) required(field string, value string, max int) {
	switch {
	case strings.TrimSpace(value) == "":
		e[field] = CodeRequired
	case utf8.RuneCountInString(value) > max:
		e[field] = CodeTooLong
	}
}

func (e FieldErrors) email(field string, value string) {
	e.required(field, value, maxEmailLength)
	if _, failed := e[field]; failed {
		return
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		e[field] = CodeInvalidEmail
	}
}
