package schema

import (
	"fmt"
	"sort"

	"github.com/fabrica/fabrica/internal/errors"
)

// RawField is one entry of an uncompiled schema: a field name paired with
// its raw spec encoding. The spec is either a bare type-name string or a
// tuple-shaped slice such as ["int", 18, 65].
type RawField struct {
	Name string
	Spec interface{}
}

// CustomLookup reports whether a custom provider with the given name is
// registered. A nil lookup means no custom providers exist.
type CustomLookup func(name string) bool

// ValidateBatchSize rejects row counts above MaxBatchSize. The check is
// independent of the schema, so oversized requests fail before any random
// draws happen.
func ValidateBatchSize(n int) error {
	if n > MaxBatchSize {
		return errors.NewBatchSizeError(n, MaxBatchSize)
	}
	if n < 0 {
		return errors.New(errors.ErrCategoryBatch, errors.CodeBatchTooLarge,
			fmt.Sprintf("batch size %d is negative", n))
	}
	return nil
}

// Compile validates a raw schema and returns its compiled form. Field order
// in the input is preserved as the schema's declaration order. Every
// validation failure carries the offending field name in its details.
func Compile(raw []RawField, hasCustom CustomLookup) (*Schema, error) {
	if len(raw) > MaxSchemaFields {
		return nil, errors.New(errors.ErrCategorySchema, errors.CodeSchemaTooLarge,
			fmt.Sprintf("schema has %d fields, maximum is %d", len(raw), MaxSchemaFields))
	}

	fields := make([]Field, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, rf := range raw {
		if _, dup := seen[rf.Name]; dup {
			return nil, errors.NewSchemaError(errors.CodeDuplicateField, rf.Name,
				"field declared more than once")
		}
		seen[rf.Name] = struct{}{}

		spec, err := compileSpec(rf.Name, rf.Spec, hasCustom)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: rf.Name, Spec: spec})
	}
	return newSchema(fields), nil
}

// CompileMap compiles a schema given as an unordered map. Go maps carry no
// declaration order, so field names are sorted to make the result
// deterministic.
func CompileMap(raw map[string]interface{}, hasCustom CustomLookup) (*Schema, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]RawField, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, RawField{Name: name, Spec: raw[name]})
	}
	return Compile(ordered, hasCustom)
}

// DateBounds validates a YYYY-MM-DD date range and returns both ends as
// days since the Unix epoch.
func DateBounds(start, end string) (startDay, endDay int64, err error) {
	spec, err := compileDateRange("date", []interface{}{start, end})
	if err != nil {
		return 0, 0, err
	}
	return spec.StartDay, spec.EndDay, nil
}

func compileSpec(field string, raw interface{}, hasCustom CustomLookup) (FieldSpec, error) {
	switch v := raw.(type) {
	case string:
		return compileSimple(field, v, hasCustom)
	case []interface{}:
		return compileTuple(field, v)
	case []string:
		tuple := make([]interface{}, len(v))
		for i, s := range v {
			tuple[i] = s
		}
		return compileTuple(field, tuple)
	default:
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("spec must be a type name or a parameter tuple, got %T", raw))
	}
}

func compileSimple(field, name string, hasCustom CustomLookup) (FieldSpec, error) {
	if IsBuiltin(name) {
		return FieldSpec{Kind: SpecSimple, TypeName: name}, nil
	}
	if hasCustom != nil && hasCustom(name) {
		return FieldSpec{Kind: SpecCustom, TypeName: name}, nil
	}
	return FieldSpec{}, errors.NewSchemaError(errors.CodeUnknownType, field,
		fmt.Sprintf("unknown field type %q", name))
}

func compileTuple(field string, tuple []interface{}) (FieldSpec, error) {
	if len(tuple) == 0 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"parameter tuple is empty")
	}
	kind, ok := tuple[0].(string)
	if !ok {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("tuple kind must be a string, got %T", tuple[0]))
	}
	args := tuple[1:]

	switch kind {
	case "int":
		return compileIntRange(field, args)
	case "float":
		return compileFloatRange(field, args)
	case "text":
		return compileTextRange(field, args)
	case "date":
		return compileDateRange(field, args)
	case "choice":
		return compileChoice(field, args)
	default:
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("unknown parameterized kind %q", kind))
	}
}

func compileIntRange(field string, args []interface{}) (FieldSpec, error) {
	if len(args) != 2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("int range takes 2 parameters, got %d", len(args)))
	}
	min, ok1 := asInt64(args[0])
	max, ok2 := asInt64(args[1])
	if !ok1 || !ok2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"int range bounds must be integers")
	}
	if min > max {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeInvalidRange, field,
			fmt.Sprintf("int range min %d exceeds max %d", min, max))
	}
	return FieldSpec{Kind: SpecIntRange, IntMin: min, IntMax: max}, nil
}

func compileFloatRange(field string, args []interface{}) (FieldSpec, error) {
	if len(args) != 2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("float range takes 2 parameters, got %d", len(args)))
	}
	min, ok1 := asFloat64(args[0])
	max, ok2 := asFloat64(args[1])
	if !ok1 || !ok2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"float range bounds must be numbers")
	}
	if min > max {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeInvalidRange, field,
			fmt.Sprintf("float range min %g exceeds max %g", min, max))
	}
	return FieldSpec{Kind: SpecFloatRange, FloatMin: min, FloatMax: max}, nil
}

func compileTextRange(field string, args []interface{}) (FieldSpec, error) {
	if len(args) != 2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("text range takes 2 parameters, got %d", len(args)))
	}
	min, ok1 := asInt64(args[0])
	max, ok2 := asInt64(args[1])
	if !ok1 || !ok2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"text range bounds must be integers")
	}
	if min < 0 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeInvalidRange, field,
			fmt.Sprintf("text length %d is negative", min))
	}
	if min > max {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeInvalidRange, field,
			fmt.Sprintf("text range min %d exceeds max %d", min, max))
	}
	return FieldSpec{Kind: SpecTextRange, MinChars: int(min), MaxChars: int(max)}, nil
}

func compileDateRange(field string, args []interface{}) (FieldSpec, error) {
	if len(args) != 2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("date range takes 2 parameters, got %d", len(args)))
	}
	start, ok1 := args[0].(string)
	end, ok2 := args[1].(string)
	if !ok1 || !ok2 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			"date range bounds must be YYYY-MM-DD strings")
	}
	startDay, err := parseDay(start)
	if err != nil {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("invalid date %q, want YYYY-MM-DD", start))
	}
	endDay, err := parseDay(end)
	if err != nil {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
			fmt.Sprintf("invalid date %q, want YYYY-MM-DD", end))
	}
	if startDay > endDay {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeInvalidRange, field,
			fmt.Sprintf("date range start %s exceeds end %s", start, end))
	}
	return FieldSpec{
		Kind:      SpecDateRange,
		DateStart: start, DateEnd: end,
		StartDay: startDay, EndDay: endDay,
	}, nil
}

func compileChoice(field string, args []interface{}) (FieldSpec, error) {
	// Both ("choice", ["a", "b"]) and ("choice", "a", "b") are accepted.
	if len(args) == 1 {
		switch inner := args[0].(type) {
		case []interface{}:
			args = inner
		case []string:
			flat := make([]interface{}, len(inner))
			for i, s := range inner {
				flat[i] = s
			}
			args = flat
		}
	}
	if len(args) == 0 {
		return FieldSpec{}, errors.NewSchemaError(errors.CodeEmptyChoice, field,
			"choice has no options")
	}
	options := make([]string, len(args))
	for i, arg := range args {
		s, ok := arg.(string)
		if !ok {
			return FieldSpec{}, errors.NewSchemaError(errors.CodeBadFieldSpec, field,
				fmt.Sprintf("choice option %d must be a string, got %T", i, arg))
		}
		options[i] = s
	}
	return FieldSpec{Kind: SpecChoice, Options: options}, nil
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		i, ok := asInt64(v)
		if !ok {
			return 0, false
		}
		return float64(i), true
	}
}
