package symstyle

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		err  error
	}{
		{name: "number", expr: Num(1)},
		{name: "string", expr: Str("red")},
		{name: "channel pair", expr: Channels{4, 6}},
		{name: "channel triple", expr: Channels{255, 0, 0}},
		{name: "channel quad", expr: Channels{255, 0, 0, 0.5}},
		{name: "single channel", expr: Channels{255}, err: ErrMalformedColor},
		{name: "five channels", expr: Channels{1, 2, 3, 4, 5}, err: ErrMalformedColor},
		{name: "nil", expr: nil, err: ErrUntyped},

		{name: "arithmetic", expr: Call{Op: OpAdd, Args: []Expr{Num(1), Num(2)}}},
		{
			name: "nested",
			expr: Call{Op: OpClamp, Args: []Expr{
				Call{Op: OpGet, Args: []Expr{Str("population")}},
				Num(0), Num(10),
			}},
		},
		{name: "time", expr: Call{Op: OpTime}},
		{
			name: "interpolate with color names",
			expr: Call{Op: OpInterpolate, Args: []Expr{Num(0.5), Str("red"), Str("blue")}},
		},
		{
			name: "interpolate with channels",
			expr: Call{Op: OpInterpolate, Args: []Expr{Num(0.5), Channels{255, 0, 0}, Channels{0, 0, 255}}},
		},

		{name: "unknown operator", expr: Call{Op: "foo", Args: []Expr{Num(1)}}, err: ErrUnknownOperator},
		{
			name: "nested unknown operator",
			expr: Call{Op: OpAdd, Args: []Expr{Num(1), Call{Op: "foo", Args: []Expr{Num(1)}}}},
			err:  ErrUnknownOperator,
		},
		{name: "wrong arity", expr: Call{Op: OpAdd, Args: []Expr{Num(1)}}, err: ErrTypeMismatch},
		{
			name: "color where number expected",
			expr: Call{Op: OpClamp, Args: []Expr{Channels{255, 0, 0}, Num(0), Num(1)}},
			err:  ErrTypeMismatch,
		},
		{
			name: "color string where number expected",
			expr: Call{Op: OpClamp, Args: []Expr{Str("red"), Num(0), Num(1)}},
			err:  ErrTypeMismatch,
		},
		{
			name: "plain string where number expected",
			expr: Call{Op: OpAdd, Args: []Expr{Str("population"), Num(1)}},
			err:  ErrTypeMismatch,
		},
		{
			name: "number where color expected",
			expr: Call{Op: OpInterpolate, Args: []Expr{Num(0.5), Num(1), Num(2)}},
			err:  ErrTypeMismatch,
		},
		{
			name: "get with numeric name",
			expr: Call{Op: OpGet, Args: []Expr{Num(1)}},
			err:  ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("Validate(%s) error: %v", ExprString(tt.expr), err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Validate(%s) error = %v, want %v", ExprString(tt.expr), err, tt.err)
			}
		})
	}
}

func TestOpKnown(t *testing.T) {
	for _, op := range []Op{OpAdd, OpGet, OpTime, OpInterpolate, OpStretch} {
		if !op.Known() {
			t.Errorf("Op(%q).Known() = false, want true", op)
		}
	}
	if Op("foo").Known() {
		t.Error(`Op("foo").Known() = true, want false`)
	}
}
