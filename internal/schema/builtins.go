package schema

// Limits on schema and batch sizes. Requests beyond them fail fast before
// any generation happens.
const (
	// MaxBatchSize caps the row count of a single generation call.
	MaxBatchSize = 10_000_000

	// MaxSchemaFields caps the number of fields in one schema.
	MaxSchemaFields = 10_000
)

// builtinTypes is the closed set of bare type names a SpecSimple may use.
var builtinTypes = map[string]struct{}{
	"name":           {},
	"first_name":     {},
	"last_name":      {},
	"email":          {},
	"safe_email":     {},
	"free_email":     {},
	"uuid":           {},
	"md5":            {},
	"sha256":         {},
	"int":            {},
	"float":          {},
	"phone":          {},
	"address":        {},
	"street_address": {},
	"city":           {},
	"state":          {},
	"country":        {},
	"zip_code":       {},
	"company":        {},
	"job":            {},
	"catch_phrase":   {},
	"url":            {},
	"domain_name":    {},
	"ipv4":           {},
	"ipv6":           {},
	"mac_address":    {},
	"color":          {},
	"hex_color":      {},
	"rgb_color":      {},
	"credit_card":    {},
	"iban":           {},
	"date":           {},
	"datetime":       {},
	"sentence":       {},
	"paragraph":      {},
	"text":           {},
}

// IsBuiltin reports whether name is one of the built-in field types.
// Custom providers may not shadow these names.
func IsBuiltin(name string) bool {
	_, ok := builtinTypes[name]
	return ok
}

// BuiltinTypes returns the built-in type names in no particular order.
func BuiltinTypes() []string {
	names := make([]string, 0, len(builtinTypes))
	for name := range builtinTypes {
		names = append(names, name)
	}
	return names
}
