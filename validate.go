package symstyle

import (
	"errors"
	"fmt"
)

// Validation errors. All are deterministic structural failures: a style
// that produces one cannot compile until the input changes, so callers
// should reject the style rather than retry.
var (
	// ErrTypeMismatch is returned when an operand's inferred kind does
	// not match the operator's expectation (including wrong arity).
	ErrTypeMismatch = errors.New("symstyle: type mismatch")

	// ErrUnknownOperator is returned for operator tags outside the
	// closed vocabulary.
	ErrUnknownOperator = errors.New("symstyle: unknown operator")

	// ErrUntyped is returned when no type could be inferred for an
	// expression.
	ErrUntyped = errors.New("symstyle: no type could be inferred")

	// ErrMalformedColor is returned when color normalization receives a
	// channel vector of the wrong length or an unrecognized color string.
	ErrMalformedColor = errors.New("symstyle: malformed color")
)

// Validate recursively checks that every operator receives arguments of
// the expected kind and arity, failing fast with a descriptive error
// carrying the offending sub-expression. Validation is purely
// structural: it never evaluates numeric ranges.
//
// If Validate succeeds, Compile cannot fail on the same expression given
// a resolvable type hint.
func Validate(e Expr) error {
	switch e := e.(type) {
	case nil:
		return fmt.Errorf("%w: nil expression", ErrUntyped)
	case Channels:
		// Two-component vectors are raw vec2 literals (sizes, offsets);
		// three and four components are colors. Anything else has no
		// shader representation.
		if len(e) < 2 || len(e) > 4 {
			return fmt.Errorf("%w: channel vector of length %d in %s", ErrMalformedColor, len(e), ExprString(e))
		}
		return nil
	case Call:
		return validateCall(e)
	}
	if InferKind(e) == KindUnknown {
		return fmt.Errorf("%w: %s", ErrUntyped, ExprString(e))
	}
	return nil
}

func validateCall(c Call) error {
	sig, known := signatures[c.Op]
	if !known {
		return fmt.Errorf("%w: %q in %s", ErrUnknownOperator, string(c.Op), ExprString(c))
	}
	if len(c.Args) != len(sig.args) {
		return fmt.Errorf("%w: %q expects %d arguments, got %d in %s",
			ErrTypeMismatch, string(c.Op), len(sig.args), len(c.Args), ExprString(c))
	}
	for i, arg := range c.Args {
		if err := Validate(arg); err != nil {
			return err
		}
		if got := InferKind(arg); !kindAccepts(sig.args[i], got) {
			return fmt.Errorf("%w: argument %d of %q expects %s, got %s in %s",
				ErrTypeMismatch, i+1, string(c.Op), sig.args[i], got, ExprString(c))
		}
	}
	return nil
}

// kindAccepts reports whether an argument of the inferred kind satisfies
// the expected kind. The ambiguous ColorOrString kind satisfies both
// Color and String expectations.
func kindAccepts(expected, got Kind) bool {
	if got == expected {
		return true
	}
	if got == KindColorOrString && (expected == KindColor || expected == KindString) {
		return true
	}
	return false
}
