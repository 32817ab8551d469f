package arith

// Flattener turns a tree into its items in postfix order. An operator of the
// wrong kind for its node is reported once its operands are flattened, the
// same node Evaluate would fail on.
type Flattener struct{}

// Flatten returns the postfix items of the tree rooted at expr.
func Flatten(expr Expr) ([]ExprItem, error) {
	return Accept[[]ExprItem](expr, Flattener{})
}

func (fl Flattener) VisitNumberExpr(expr *NumberExpr) ([]ExprItem, error) {
	return []ExprItem{ValueItem(expr.Get())}, nil
}

func (fl Flattener) VisitBinaryExpr(expr *BinaryExpr) ([]ExprItem, error) {
	left, err := Accept[[]ExprItem](expr.left, fl)
	if err != nil {
		return nil, err
	}
	right, err := Accept[[]ExprItem](expr.right, fl)
	if err != nil {
		return nil, err
	}
	if !expr.op.IsBinary() {
		return nil, NewOperatorError("binary", expr.op)
	}
	items := make([]ExprItem, 0, len(left)+len(right)+1)
	items = append(items, left...)
	items = append(items, right...)
	return append(items, OperatorItem(expr.op)), nil
}

func (fl Flattener) VisitUnaryExpr(expr *UnaryExpr) ([]ExprItem, error) {
	items, err := Accept[[]ExprItem](expr.expr, fl)
	if err != nil {
		return nil, err
	}
	if !expr.op.IsUnary() {
		return nil, NewOperatorError("unary", expr.op)
	}
	return append(items, OperatorItem(expr.op)), nil
}
