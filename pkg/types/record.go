package types

// Record is one generated instantiation of a schema, keyed by field name.
type Record map[string]Value

// Tuple is one generated instantiation of a schema with values in
// alphabetical field order.
type Tuple []Value
