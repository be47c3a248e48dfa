package kernel

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"ledger/internal/pkg/errs"
)

var (
	errInvalidUTF8 = errors.New("text is not valid UTF-8")
	errNULByte     = errors.New("text contains a NUL byte")
)

// RequiredText trims value and checks it is non-empty, storable and at most
// maxLen runes.
func RequiredText(paramName, value string, maxLen int) (string, error) {
	if err := checkEncoding(paramName, value); err != nil {
		return "", err
	}
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return v, checkLength(paramName, v, maxLen)
}

// OptionalText is RequiredText that accepts an empty value.
func OptionalText(paramName, value string, maxLen int) (string, error) {
	if err := checkEncoding(paramName, value); err != nil {
		return "", err
	}
	v := strings.TrimSpace(value)
	return v, checkLength(paramName, v, maxLen)
}

// PostgreSQL text columns hold neither NUL nor invalid UTF-8.
func checkEncoding(paramName, v string) error {
	if !utf8.ValidString(v) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, errInvalidUTF8)
	}
	if strings.IndexByte(v, 0) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, errNULByte)
	}
	return nil
}

func checkLength(paramName, v string, maxLen int) error {
	if maxLen > 0 && utf8.RuneCountInString(v) > maxLen {
		return errs.NewValueIsOutOfRangeError(paramName+" length", utf8.RuneCountInString(v), 0, maxLen)
	}
	return nil
}

// Now returns the current UTC time at the precision PostgreSQL stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
