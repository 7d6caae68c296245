// Package jsontree navigates decoded JSON documents whose shape is not trusted.
//
// A Node is either a present value (mapping, array, scalar or null) or missing.
// Every lookup on a missing or mistyped position yields a missing Node, so
// chains like doc.Get("a", "b").Index(0).AsString() never panic.
package jsontree

import (
	"math"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

type Node struct {
	value   any
	present bool
}

// New wraps an already decoded value.
func New(value any) Node {
	return Node{value: value, present: true}
}

// Missing returns the absent node.
func Missing() Node {
	return Node{}
}

// Parse decodes raw JSON into a tree.
func Parse(raw []byte) (Node, error) {
	var value any
	if err := sonic.Unmarshal(raw, &value); err != nil {
		return Node{}, err
	}
	return New(value), nil
}

func (n Node) Exists() bool {
	return n.present
}

func (n Node) IsNull() bool {
	return n.present && n.value == nil
}

// IsAbsent reports a missing key or an explicit null.
func (n Node) IsAbsent() bool {
	return !n.present || n.value == nil
}

func (n Node) Raw() any {
	if !n.present {
		return nil
	}
	return n.value
}

// Get walks mapping keys in order.
func (n Node) Get(path ...string) Node {
	cur := n
	for _, key := range path {
		obj, ok := cur.object()
		if !ok {
			return Node{}
		}
		value, ok := obj[key]
		if !ok {
			return Node{}
		}
		cur = New(value)
	}
	return cur
}

func (n Node) Index(i int) Node {
	arr, ok := n.array()
	if !ok || i < 0 || i >= len(arr) {
		return Node{}
	}
	return New(arr[i])
}

func (n Node) IsObject() bool {
	_, ok := n.object()
	return ok
}

func (n Node) IsArray() bool {
	_, ok := n.array()
	return ok
}

// Items returns array elements; any other shape yields nil.
func (n Node) Items() []Node {
	arr, ok := n.array()
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(arr))
	for _, item := range arr {
		out = append(out, New(item))
	}
	return out
}

// Keys returns mapping keys in natural order ("bat_2" before "bat_10").
func (n Node) Keys() []string {
	obj, ok := n.object()
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	SortNatural(keys)
	return keys
}

// Len is the number of entries of a mapping or array, zero otherwise.
func (n Node) Len() int {
	if obj, ok := n.object(); ok {
		return len(obj)
	}
	if arr, ok := n.array(); ok {
		return len(arr)
	}
	return 0
}

func (n Node) AsString() (string, bool) {
	if !n.present {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// AsFloat accepts numeric values only; booleans and numeric strings are rejected.
func (n Node) AsFloat() (float64, bool) {
	if !n.present {
		return 0, false
	}
	switch v := n.value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// AsInt accepts integral numeric values only.
func (n Node) AsInt() (int64, bool) {
	f, ok := n.AsFloat()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func (n Node) AsBool() (bool, bool) {
	if !n.present {
		return false, false
	}
	b, ok := n.value.(bool)
	return b, ok
}

// IsScalar reports a string or number.
func (n Node) IsScalar() bool {
	if _, ok := n.AsString(); ok {
		return true
	}
	_, ok := n.AsFloat()
	return ok
}

// Truthy mirrors loose truthiness: null, "", 0, false, {} and [] are falsy.
func (n Node) Truthy() bool {
	if !n.present || n.value == nil {
		return false
	}
	switch v := n.value.(type) {
	case string:
		return v != ""
	case bool:
		return v
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	if f, ok := n.AsFloat(); ok {
		return f != 0
	}
	return true
}

// Text renders a value for display. Numbers use the shortest exact form,
// containers render as compact JSON and missing or null values are empty.
func (n Node) Text() string {
	if n.IsAbsent() {
		return ""
	}
	switch v := n.value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}
	if f, ok := n.AsFloat(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	raw, err := sonic.Marshal(n.value)
	if err != nil {
		return ""
	}
	return string(raw)
}

// TextOr renders the node, or fallback when it is absent.
func (n Node) TextOr(fallback string) string {
	if n.IsAbsent() {
		return fallback
	}
	return n.Text()
}

func (n Node) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(n.Raw())
}

// Or returns the first truthy node. When none is truthy it returns the last
// node, so Or(a, b, New(0)) falls back to the literal.
func Or(nodes ...Node) Node {
	if len(nodes) == 0 {
		return Node{}
	}
	for _, node := range nodes {
		if node.Truthy() {
			return node
		}
	}
	return nodes[len(nodes)-1]
}

// FirstText returns the text of the first truthy node, or fallback.
func FirstText(fallback string, nodes ...Node) string {
	for _, node := range nodes {
		if node.Truthy() {
			return node.Text()
		}
	}
	return fallback
}

func (n Node) object() (map[string]any, bool) {
	if !n.present {
		return nil, false
	}
	obj, ok := n.value.(map[string]any)
	return obj, ok
}

func (n Node) array() ([]any, bool) {
	if !n.present {
		return nil, false
	}
	arr, ok := n.value.([]any)
	return arr, ok
}

// SortNatural orders strings comparing digit runs numerically.
func SortNatural(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return naturalLess(items[i], items[j])
	})
}

func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, restA := leadingDigits(a)
		db, restB := leadingDigits(b)
		if da != "" && db != "" {
			ta := strings.TrimLeft(da, "0")
			tb := strings.TrimLeft(db, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			a, b = restA, restB
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func leadingDigits(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}
