package arith

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ItemKind tells which half of an ExprItem is set.
type ItemKind uint8

const (
	IllegalItem ItemKind = iota
	OperatorKind
	ValueKind
)

// ExprItem is one token of a flattened tree: either a value or an operator.
// The zero ExprItem is neither and is rejected by the stack evaluator.
type ExprItem struct {
	kind  ItemKind
	value float64
	op    Operator
}

func ValueItem(value float64) ExprItem {
	return ExprItem{kind: ValueKind, value: value}
}

func OperatorItem(op Operator) ExprItem {
	return ExprItem{kind: OperatorKind, op: op}
}

func (item ExprItem) Kind() ItemKind {
	return item.kind
}

func (item ExprItem) Value() float64 {
	return item.value
}

func (item ExprItem) Operator() Operator {
	return item.op
}

func (item ExprItem) String() string {
	switch item.kind {
	case ValueKind:
		return formatNumber(item.value)
	case OperatorKind:
		return item.op.Symbol()
	}
	return "<illegal>"
}

type itemJSON struct {
	Value *float64 `json:"value,omitempty"`
	Op    string   `json:"op,omitempty"`
}

func (item ExprItem) MarshalJSON() ([]byte, error) {
	raw, err := item.toJSON(-1)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func (item *ExprItem) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := raw.toItem(-1)
	if err != nil {
		return err
	}
	*item = decoded
	return nil
}

func (item ExprItem) toJSON(pos int) (itemJSON, error) {
	switch item.kind {
	case ValueKind:
		v := item.value
		return itemJSON{Value: &v}, nil
	case OperatorKind:
		return itemJSON{Op: item.op.Symbol()}, nil
	}
	return itemJSON{}, NewItemError(pos, "Cannot encode an illegal item.")
}

func (raw itemJSON) toItem(pos int) (ExprItem, error) {
	switch {
	case raw.Value != nil && raw.Op == "":
		return ValueItem(*raw.Value), nil
	case raw.Value == nil && raw.Op != "":
		op, ok := operatorFromSymbol(raw.Op)
		if !ok {
			return ExprItem{}, NewItemError(pos, fmt.Sprintf("Unknown operator '%s'.", raw.Op))
		}
		return OperatorItem(op), nil
	}
	return ExprItem{}, NewItemError(pos, "Item must have exactly one of value or op.")
}

// EncodeItems writes items as a JSON array.
func EncodeItems(items []ExprItem) ([]byte, error) {
	raws := make([]itemJSON, 0, len(items))
	for pos, item := range items {
		raw, err := item.toJSON(pos)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return json.Marshal(raws)
}

// DecodeItems reads items written by EncodeItems.
func DecodeItems(data []byte) ([]ExprItem, error) {
	var raws []itemJSON
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	items := make([]ExprItem, 0, len(raws))
	for pos, raw := range raws {
		item, err := raw.toItem(pos)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
