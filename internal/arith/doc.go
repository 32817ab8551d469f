/*
Tree

	expr   --> number
	         | unary
	         | binary ;
	number --> NUMBER ;
	unary  --> ( "u+" | "u-" ) expr ;
	binary --> expr ( "+" | "-" | "*" | "/" ) expr ;

Postfix form

	items  --> item+ ;
	item   --> VALUE | OPERATOR ;

A tree is flattened in postfix order: the items of the left operand come before
the items of the right operand, which come before the operator consuming them.
Evaluating the flattened items with an operand stack gives the same value as
evaluating the tree directly.

"unary" rule only accepts the unary operators, "binary" rule only accepts the
binary ones. Anything else is reported as an OperatorError when evaluated.
*/
package arith
