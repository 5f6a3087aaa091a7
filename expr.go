package symstyle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Expression errors.
var (
	// ErrBadExpression is returned by ParseExpr for values that do not
	// form a literal or an operator application.
	ErrBadExpression = errors.New("symstyle: malformed expression")
)

// Expr is a node of an immutable style expression tree: a literal
// (number, string, or channel vector) or an operator application.
// Expression trees are read-only; compilation never mutates them.
type Expr interface {
	exprNode()
}

// Num is a numeric literal.
type Num float64

func (Num) exprNode() {}

// Str is a string literal. A string that parses as a color name or hex
// notation is ambiguous between String and Color until a consuming
// context resolves it; see InferKind.
type Str string

func (Str) exprNode() {}

// Channels is a numeric vector literal of two to four components.
// Three and four component vectors denote colors (0-255 RGB channels
// plus an optional 0-1 alpha); two component vectors are raw vec2
// literals used for sizes and offsets.
type Channels []float64

func (Channels) exprNode() {}

// Call applies an operator to nested argument expressions. Arity and
// operand kinds are fixed per operator; see the signature table in op.go.
type Call struct {
	Op   Op
	Args []Expr
}

func (Call) exprNode() {}

// ParseExpr converts a JSON-shaped value into a typed expression tree.
// Numbers and strings map to literals. An array whose first element is a
// string becomes an operator application; an all-numeric array becomes a
// channel vector. Unknown operators parse successfully and are rejected
// later by Validate, so parse errors stay purely structural.
func ParseExpr(v any) (Expr, error) {
	switch v := v.(type) {
	case Expr:
		return v, nil
	case float64:
		return Num(v), nil
	case float32:
		return Num(v), nil
	case int:
		return Num(v), nil
	case string:
		return Str(v), nil
	case []any:
		return parseSeq(v)
	case []float64:
		return Channels(v), nil
	}
	return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrBadExpression, v, v)
}

// parseSeq parses an array value: an operator application when the head
// is a string, a channel vector when every element is numeric.
func parseSeq(seq []any) (Expr, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadExpression)
	}

	if tag, ok := seq[0].(string); ok {
		args := make([]Expr, 0, len(seq)-1)
		for _, raw := range seq[1:] {
			arg, err := ParseExpr(raw)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return Call{Op: Op(tag), Args: args}, nil
	}

	ch := make(Channels, 0, len(seq))
	for _, raw := range seq {
		n, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: sequence mixes numbers with %v (%T)", ErrBadExpression, raw, raw)
		}
		ch = append(ch, n)
	}
	return ch, nil
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// ExprString renders an expression in its wire form for error messages.
func ExprString(e Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"
	case Num:
		return strconv.FormatFloat(float64(e), 'g', -1, 64)
	case Str:
		return strconv.Quote(string(e))
	case Channels:
		parts := make([]string, len(e))
		for i, n := range e {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Call:
		parts := make([]string, len(e.Args)+1)
		parts[0] = strconv.Quote(string(e.Op))
		for i, arg := range e.Args {
			parts[i+1] = ExprString(arg)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", e)
}
