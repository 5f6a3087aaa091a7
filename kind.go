package symstyle

// Kind is the inferred category of an expression value, used purely for
// compile-time validation. It is never a runtime tag in generated code.
type Kind uint8

const (
	// KindUnknown marks expressions from which no kind can be inferred.
	KindUnknown Kind = iota

	// KindNumber is a scalar float value.
	KindNumber

	// KindString is a string token, consumed before code generation
	// (attribute and variable names); never a runtime shader value.
	KindString

	// KindColor is a 4-component color vector.
	KindColor

	// KindColorOrString is a string literal that also parses as a
	// color. The ambiguity is resolved by the consuming context's type
	// hint; default resolution favors String.
	KindColorOrString
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindColorOrString:
		return "color or string"
	default:
		return "unknown"
	}
}

// InferKind determines the value kind of an expression without
// evaluating it. InferKind is total: it returns KindUnknown rather than
// failing, so validation failures stay localized in Validate.
func InferKind(e Expr) Kind {
	switch e := e.(type) {
	case Num:
		return KindNumber
	case Str:
		if _, ok := ParseColor(string(e)); ok {
			return KindColorOrString
		}
		return KindString
	case Channels:
		if len(e) == 3 || len(e) == 4 {
			return KindColor
		}
		return KindUnknown
	case Call:
		if sig, ok := signatures[e.Op]; ok {
			return sig.result
		}
		return KindUnknown
	}
	return KindUnknown
}
