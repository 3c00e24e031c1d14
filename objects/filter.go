package objects

// FilterBy returns, in iteration order, the elements e of c for which
// Compare(Get(e, key), value, op) holds. Elements where key does not resolve
// are excluded.
//
// op defaults to [OpContains] when value is a sequence and to [OpEqual]
// otherwise. An unknown operator matches nothing; validate user input with
// [ParseOperator] first.
//
//	cheap := objects.FilterBy(products, "price", 2000, objects.OpLess)
func FilterBy(c any, key string, value any, op ...Operator) []any {
	operator := defaultOperator(value, op)
	out := make([]any, 0)
	for _, e := range entries(c) {
		actual, ok := std.lookup(e.Value, key)
		if !ok {
			continue
		}
		if Compare(actual, value, operator) {
			out = append(out, e.Value)
		}
	}
	return out
}

// FindBy returns the first element matching the same predicate as
// [FilterBy], converted with [ToObject]. It returns an empty Object and
// false when nothing matches.
func FindBy(c any, key string, value any, op ...Operator) (Object, bool) {
	operator := defaultOperator(value, op)
	for _, e := range entries(c) {
		actual, ok := std.lookup(e.Value, key)
		if ok && Compare(actual, value, operator) {
			return ToObject(e.Value), true
		}
	}
	return Object{}, false
}

func defaultOperator(value any, op []Operator) Operator {
	if len(op) > 0 && op[0] != "" {
		return op[0]
	}
	if isSequence(value) {
		return OpContains
	}
	return OpEqual
}

// Pluck extracts the value at path from every element of c; missing values
// are nil. Sequences yield []any. Objects and maps yield an Object keyed like
// the input.
//
//	names := objects.Pluck(users, "name") // []any{"Alice", "Bob"}
func Pluck(c any, path string) any {
	items := entries(c)
	if isSequence(c) || !isContainer(c) {
		out := make([]any, len(items))
		for i, e := range items {
			out[i] = Get(e.Value, path)
		}
		return out
	}
	o := newObject(len(items))
	for _, e := range items {
		o.put(e.Key, Get(e.Value, path))
	}
	return o
}
