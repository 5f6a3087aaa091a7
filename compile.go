package symstyle

import (
	"fmt"
	"strconv"

	"github.com/gogpu/symstyle/internal/wgsl"
)

// NameSet is an ordered, duplicate-free collection of referenced names
// accumulated during compilation (attribute or variable dependencies).
// The zero value is ready to use.
type NameSet struct {
	names []string
	seen  map[string]struct{}
}

// Add records a name unless it is already present.
func (s *NameSet) Add(name string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}

// Has reports whether the name has been recorded.
func (s *NameSet) Has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

// Names returns the recorded names in insertion order. The returned
// slice is owned by the set and must not be modified.
func (s *NameSet) Names() []string { return s.names }

// Len returns the number of recorded names.
func (s *NameSet) Len() int { return len(s.names) }

// Context carries the accumulator state of one compilation pass: the
// prefix prepended to attribute references and the ordered sets of
// attribute and variable names the compiled expressions read. A vertex
// stage and a fragment stage use distinct contexts (distinct attribute
// prefixes) while typically sharing one variable set.
//
// A Context is not safe for concurrent use; each compiling call owns its
// contexts.
type Context struct {
	// AttributePrefix is prepended to per-feature attribute references
	// emitted by the get operator, e.g. "in.a_" for the vertex stage.
	AttributePrefix string

	// Attributes collects the per-feature input names the compiled
	// expressions reference.
	Attributes *NameSet

	// Variables collects the user-settable runtime parameter names the
	// compiled expressions reference.
	Variables *NameSet
}

// NewContext returns a compilation context with fresh dependency sets
// and the given attribute prefix.
func NewContext(attributePrefix string) *Context {
	return &Context{
		AttributePrefix: attributePrefix,
		Attributes:      &NameSet{},
		Variables:       &NameSet{},
	}
}

// Compile validates an expression and lowers it to a self-contained WGSL
// expression string, recording attribute and variable dependencies into
// the context sets. The hint disambiguates string literals that parse as
// colors: pass KindColor in color-consuming positions, KindUnknown
// otherwise (default resolution favors String). Nothing is emitted on
// failure.
func (c *Context) Compile(e Expr, hint Kind) (string, error) {
	if err := Validate(e); err != nil {
		return "", err
	}
	return c.emit(e, hint)
}

// emit lowers a validated expression. Every produced fragment is
// syntactically self-contained so it can be embedded without precedence
// errors.
func (c *Context) emit(e Expr, hint Kind) (string, error) {
	switch e := e.(type) {
	case Num:
		return wgsl.Float(float64(e)), nil
	case Str:
		return c.emitString(e, hint)
	case Channels:
		return c.emitChannels(e, hint)
	case Call:
		return c.emitCall(e)
	}
	return "", fmt.Errorf("%w: %s", ErrUntyped, ExprString(e))
}

// emitString lowers a string literal. Under a Color hint the string is
// normalized to a 4-component vector. Under the default String
// resolution it becomes a quoted token; such tokens only appear in
// positions consumed before code generation (attribute and variable
// names) and are never emitted into a shader.
func (c *Context) emitString(s Str, hint Kind) (string, error) {
	if hint == KindColor {
		col, ok := ParseColor(string(s))
		if !ok {
			return "", fmt.Errorf("%w: %q is not a recognized color", ErrMalformedColor, string(s))
		}
		return wgsl.VecFloats(col.R, col.G, col.B, col.A), nil
	}
	return strconv.Quote(string(s)), nil
}

// emitChannels lowers a numeric vector literal. Vectors of three or
// four components are colors: RGB channels are scaled from 0-255 to
// 0-1, alpha passes through unchanged and defaults to 1. Two-component
// vectors are raw vec2 constructors.
func (c *Context) emitChannels(ch Channels, hint Kind) (string, error) {
	if hint == KindColor || len(ch) >= 3 {
		switch len(ch) {
		case 3:
			return wgsl.VecFloats(ch[0]/255, ch[1]/255, ch[2]/255, 1), nil
		case 4:
			return wgsl.VecFloats(ch[0]/255, ch[1]/255, ch[2]/255, ch[3]), nil
		default:
			return "", fmt.Errorf("%w: channel vector of length %d in %s", ErrMalformedColor, len(ch), ExprString(ch))
		}
	}
	return wgsl.VecFloats(ch...), nil
}

func (c *Context) emitCall(call Call) (string, error) {
	switch call.Op {
	case OpGet:
		name := string(call.Args[0].(Str))
		c.Attributes.Add(name)
		return c.AttributePrefix + name, nil

	case OpVar:
		name := string(call.Args[0].(Str))
		c.Variables.Add(name)
		return "style.u_" + name, nil

	case OpTime:
		return "style.u_time", nil

	case OpMultiply, OpDivide, OpAdd, OpSubtract:
		a, b, err := c.emitPair(call)
		if err != nil {
			return "", err
		}
		return "(" + a + " " + string(call.Op) + " " + b + ")", nil

	case OpMod:
		a, b, err := c.emitPair(call)
		if err != nil {
			return "", err
		}
		return "(" + a + " % " + b + ")", nil

	case OpPow:
		a, b, err := c.emitPair(call)
		if err != nil {
			return "", err
		}
		return "pow(" + a + ", " + b + ")", nil

	case OpClamp:
		args, err := c.emitArgs(call, KindUnknown)
		if err != nil {
			return "", err
		}
		return "clamp(" + args[0] + ", " + args[1] + ", " + args[2] + ")", nil

	case OpStretch:
		// Linear remap: clamp v into [lo1, hi1], shift by lo1, scale by
		// (hi2-lo2)/(hi1-lo1), shift by lo2. Operands referenced more
		// than once are compiled once and the code reused textually;
		// operand expressions are side-effect-free.
		args, err := c.emitArgs(call, KindUnknown)
		if err != nil {
			return "", err
		}
		v, lo1, hi1, lo2, hi2 := args[0], args[1], args[2], args[3], args[4]
		return fmt.Sprintf("((clamp(%s, %s, %s) - %s) * ((%s - %s) / (%s - %s)) + %s)",
			v, lo1, hi1, lo1, hi2, lo2, hi1, lo1, lo2), nil

	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpEqual:
		a, b, err := c.emitPair(call)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("select(0.0, 1.0, (%s %s %s))", a, string(call.Op), b), nil

	case OpNot:
		// Numeric truthiness: a value > 0.0 is true.
		a, err := c.emit(call.Args[0], KindUnknown)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("select(1.0, 0.0, (%s > 0.0))", a), nil

	case OpBetween:
		args, err := c.emitArgs(call, KindUnknown)
		if err != nil {
			return "", err
		}
		v, lo, hi := args[0], args[1], args[2]
		return fmt.Sprintf("select(0.0, 1.0, ((%s >= %s) && (%s <= %s)))", v, lo, v, hi), nil

	case OpInterpolate:
		t, err := c.emit(call.Args[0], KindUnknown)
		if err != nil {
			return "", err
		}
		a, err := c.emit(call.Args[1], KindColor)
		if err != nil {
			return "", err
		}
		b, err := c.emit(call.Args[2], KindColor)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("mix(%s, %s, %s)", a, b, t), nil
	}

	return "", fmt.Errorf("%w: %q in %s", ErrUnknownOperator, string(call.Op), ExprString(call))
}

// emitPair lowers the two operands of a binary operator.
func (c *Context) emitPair(call Call) (string, string, error) {
	a, err := c.emit(call.Args[0], KindUnknown)
	if err != nil {
		return "", "", err
	}
	b, err := c.emit(call.Args[1], KindUnknown)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// emitArgs lowers every operand with a shared hint.
func (c *Context) emitArgs(call Call, hint Kind) ([]string, error) {
	out := make([]string, len(call.Args))
	for i, arg := range call.Args {
		code, err := c.emit(arg, hint)
		if err != nil {
			return nil, err
		}
		out[i] = code
	}
	return out, nil
}
