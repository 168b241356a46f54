// Package locale holds the static lookup tables consumed by the field
// dispatcher. Tables are opaque pick-one-of-N sources; the generation
// engine never inspects their contents.
package locale

// Table bundles every lookup list for one locale.
type Table struct {
	Name string

	FirstNames     []string
	LastNames      []string
	Cities         []string
	States         []string
	StateAbbrs     []string
	Countries      []string
	StreetNames    []string
	StreetSuffixes []string

	EmailDomains     []string
	FreeEmailDomains []string
	SafeEmailDomains []string
	TLDs             []string

	ColorNames []string

	CompanyPrefixes       []string
	CompanySuffixes       []string
	JobTitles             []string
	CatchPhraseAdjectives []string
	CatchPhraseNouns      []string

	LoremWords []string
}

// Supported returns the names of all bundled locales.
func Supported() []string {
	return []string{"en_US"}
}

// Lookup returns the table for the named locale, or false when the locale
// is not bundled.
func Lookup(name string) (*Table, bool) {
	if name == "en_US" {
		return &enUS, true
	}
	return nil, false
}

// Default returns the en_US table.
func Default() *Table {
	return &enUS
}
