package arith

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func num(v float64) *NumberExpr {
	return NewNumberExpr(v)
}

func bin(op Operator, left, right Expr) *BinaryExpr {
	return NewBinaryExpr(op, left, right)
}

func un(op Operator, expr Expr) *UnaryExpr {
	return NewUnaryExpr(op, expr)
}

// ((10 - 4) / -2) * (3 + +1.5)
func composedTree() Expr {
	return bin(Multiply,
		bin(Divide,
			bin(Minus, num(10), num(4)),
			un(UnaryMinus, num(2))),
		bin(Plus,
			num(3),
			un(UnaryPlus, num(1.5))))
}

// wellFormedTrees is shared by the tests checking that both evaluation
// algorithms agree.
func wellFormedTrees() []Expr {
	shared := bin(Divide, num(1), num(3))
	return []Expr{
		num(0),
		num(-2.75),
		un(UnaryMinus, num(5)),
		un(UnaryPlus, num(5)),
		un(UnaryMinus, un(UnaryMinus, num(3.14))),
		bin(Plus, num(10), num(20)),
		bin(Minus, num(10), num(4)),
		bin(Divide, num(20), num(4)),
		bin(Multiply, num(0.1), num(0.2)),
		bin(Divide, num(1), num(0)),
		bin(Minus, bin(Minus, num(1), num(2)), bin(Minus, num(3), num(4))),
		bin(Plus, shared, bin(Multiply, shared, shared)),
		composedTree(),
	}
}
