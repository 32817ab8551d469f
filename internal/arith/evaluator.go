package arith

// TreeEvaluator computes the value of a tree by walking it recursively. This
// struct implements ExprVisitor.
type TreeEvaluator struct{}

// Evaluate returns the value of the tree rooted at expr.
func Evaluate(expr Expr) (float64, error) {
	return Accept[float64](expr, TreeEvaluator{})
}

func (ev TreeEvaluator) VisitNumberExpr(expr *NumberExpr) (float64, error) {
	return expr.Get(), nil
}

func (ev TreeEvaluator) VisitBinaryExpr(expr *BinaryExpr) (float64, error) {
	// Minus and Divide are not commutative, left has to be evaluated first.
	lhs, err := Accept[float64](expr.left, ev)
	if err != nil {
		return 0, err
	}
	rhs, err := Accept[float64](expr.right, ev)
	if err != nil {
		return 0, err
	}
	result, ok := applyBinary(expr.op, lhs, rhs)
	if !ok {
		return 0, NewOperatorError("binary", expr.op)
	}
	return result, nil
}

func (ev TreeEvaluator) VisitUnaryExpr(expr *UnaryExpr) (float64, error) {
	val, err := Accept[float64](expr.expr, ev)
	if err != nil {
		return 0, err
	}
	result, ok := applyUnary(expr.op, val)
	if !ok {
		return 0, NewOperatorError("unary", expr.op)
	}
	return result, nil
}

// Division by zero is not checked, the IEEE-754 result is returned as is.
func applyBinary(op Operator, lhs, rhs float64) (float64, bool) {
	switch op {
	case Plus:
		return lhs + rhs, true
	case Minus:
		return lhs - rhs, true
	case Multiply:
		return lhs * rhs, true
	case Divide:
		return lhs / rhs, true
	}
	return 0, false
}

func applyUnary(op Operator, val float64) (float64, bool) {
	switch op {
	case UnaryPlus:
		return +val, true
	case UnaryMinus:
		return -val, true
	}
	return 0, false
}
