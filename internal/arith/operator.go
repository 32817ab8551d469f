package arith

import "fmt"

// Operator is the operation carried by unary and binary expressions.
type Operator uint8

const (
	Illegal Operator = iota
	Plus
	Minus
	Multiply
	Divide
	UnaryPlus
	UnaryMinus
)

var operatorNames = map[Operator]string{
	Illegal:    "Illegal",
	Plus:       "Plus",
	Minus:      "Minus",
	Multiply:   "Multiply",
	Divide:     "Divide",
	UnaryPlus:  "UnaryPlus",
	UnaryMinus: "UnaryMinus",
}

var operatorSymbols = map[Operator]string{
	Plus:       "+",
	Minus:      "-",
	Multiply:   "*",
	Divide:     "/",
	UnaryPlus:  "u+",
	UnaryMinus: "u-",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// Symbol returns the short form of the operator used in flattened output.
func (op Operator) Symbol() string {
	if sym, ok := operatorSymbols[op]; ok {
		return sym
	}
	return "?"
}

// IsBinary reports whether the operator can be carried by a BinaryExpr.
func (op Operator) IsBinary() bool {
	switch op {
	case Plus, Minus, Multiply, Divide:
		return true
	}
	return false
}

// IsUnary reports whether the operator can be carried by a UnaryExpr.
func (op Operator) IsUnary() bool {
	return op == UnaryPlus || op == UnaryMinus
}

func operatorFromSymbol(sym string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == sym {
			return op, true
		}
	}
	return Illegal, false
}
