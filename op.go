package symstyle

// Op names an operator of the closed expression vocabulary. The set is
// fixed: unknown tags are rejected by Validate, and every operator
// carries one signature record shared by the validator and the compiler.
type Op string

// Operator vocabulary.
const (
	OpMultiply     Op = "*"
	OpDivide       Op = "/"
	OpAdd          Op = "+"
	OpSubtract     Op = "-"
	OpMod          Op = "mod"
	OpPow          Op = "pow"
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
	OpEqual        Op = "=="
	OpNot          Op = "!"
	OpBetween      Op = "between"
	OpClamp        Op = "clamp"
	OpStretch      Op = "stretch"
	OpGet          Op = "get"
	OpVar          Op = "var"
	OpTime         Op = "time"
	OpInterpolate  Op = "interpolate"
)

// signature fixes an operator's arity, per-position operand kinds and
// result kind. Comparisons return Number: booleans are 0.0/1.0 floats
// in the generated code.
type signature struct {
	args   []Kind
	result Kind
}

var num = KindNumber

var signatures = map[Op]signature{
	OpMultiply:     {args: []Kind{num, num}, result: num},
	OpDivide:       {args: []Kind{num, num}, result: num},
	OpAdd:          {args: []Kind{num, num}, result: num},
	OpSubtract:     {args: []Kind{num, num}, result: num},
	OpMod:          {args: []Kind{num, num}, result: num},
	OpPow:          {args: []Kind{num, num}, result: num},
	OpGreater:      {args: []Kind{num, num}, result: num},
	OpGreaterEqual: {args: []Kind{num, num}, result: num},
	OpLess:         {args: []Kind{num, num}, result: num},
	OpLessEqual:    {args: []Kind{num, num}, result: num},
	OpEqual:        {args: []Kind{num, num}, result: num},
	OpNot:          {args: []Kind{num}, result: num},
	OpBetween:      {args: []Kind{num, num, num}, result: num},
	OpClamp:        {args: []Kind{num, num, num}, result: num},
	OpStretch:      {args: []Kind{num, num, num, num, num}, result: num},
	OpGet:          {args: []Kind{KindString}, result: num},
	OpVar:          {args: []Kind{KindString}, result: num},
	OpTime:         {args: []Kind{}, result: num},
	OpInterpolate:  {args: []Kind{num, KindColor, KindColor}, result: KindColor},
}

// Known reports whether the operator belongs to the closed vocabulary.
func (op Op) Known() bool {
	_, ok := signatures[op]
	return ok
}
