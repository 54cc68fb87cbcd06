package protocol

import (
	"fmt"
	"strings"
	"unicode"
)

// Validator is a type able to validate itself. Validate inspects the type for
// syntactic or semantic issues, and returns a descriptive error if any
// violations are encountered. Validate returns instances of ValidationError
// where possible, which enables tracking nested contexts.
type Validator interface {
	Validate() error
}

// ValidationError is an error implementation which captures its validation context.
type ValidationError struct {
	Context []string
	Err     error
}

// Error implements the error interface.
func (ve *ValidationError) Error() string {
	if len(ve.Context) != 0 {
		return strings.Join(ve.Context, ".") + ": " + ve.Err.Error()
	}
	return ve.Err.Error()
}

// Unwrap returns the underlying error.
func (ve *ValidationError) Unwrap() error { return ve.Err }

// ExtendContext type-checks |err| to a *ValidationError, and if matched extends
// it with |context|. In all cases the value of |err| is returned.
func ExtendContext(err error, format string, args ...interface{}) error {
	if ve, ok := err.(*ValidationError); ok {
		ve.Context = append([]string{fmt.Sprintf(format, args...)}, ve.Context...)
	}
	return err
}

// NewValidationError parallels fmt.Errorf to returns a new ValidationError instance.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

// ValidateToken ensures the string is of length [min, max] and consists
// only of runes drawn from a restricted set: unicode.Letter and unicode.Digit
// character classes, and the symbols -_./
// Tokens name catalog entries and stages.
func ValidateToken(n string, min, max int) error {
	return validateAlphabet(n, tokenSymbols, min, max)
}

// ValidateResourceKey ensures the string is a namespaced resource key, such
// as "minecraft:diamond_sword". The namespace is optional.
func ValidateResourceKey(n string, min, max int) error {
	if l := len(n); l < min || l > max {
		return NewValidationError("invalid length (%d; expected %d <= length <= %d)", l, min, max)
	}
	var ns, path = "", n
	if ind := strings.IndexByte(n, ':'); ind != -1 {
		ns, path = n[:ind], n[ind+1:]
	}
	if ns != "" {
		if err := validateAlphabet(ns, tokenSymbols, 1, max); err != nil {
			return ExtendContext(err, "namespace")
		}
	}
	if err := validateAlphabet(path, tokenSymbols, 1, max); err != nil {
		return ExtendContext(err, "path")
	}
	return nil
}

func validateAlphabet(n, alpha string, min, max int) error {
	if l := len(n); l < min || l > max {
		return NewValidationError("invalid length (%d; expected %d <= length <= %d)", l, min, max)
	}
	for _, r := range n {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		} else if !strings.ContainsRune(alpha, r) {
			return NewValidationError("not a valid token (%s)", n)
		}
	}
	return nil
}

// tokenSymbols is allowed runes of tokens, beyond letters and digits.
const tokenSymbols = "-_./"
