// Package dispatch maps compiled field specs to their value generators.
// Every generator takes the draw stream explicitly, so the same dispatcher
// can serve live calls and snapshot replays alike.
package dispatch

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fabrica/fabrica/internal/checksum"
	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/locale"
	"github.com/fabrica/fabrica/internal/provider"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// Default bounds applied when a bare type name is used without parameters.
const (
	defaultIntMin = 0
	defaultIntMax = 1000

	defaultFloatMin = 0.0
	defaultFloatMax = 1.0

	defaultDateStart = "2000-01-01"
	defaultDateEnd   = "2030-12-31"

	defaultSentenceWords      = 10
	defaultParagraphSentences = 5
	defaultTextMinChars       = 50
	defaultTextMaxChars       = 200
)

var domainWords = []string{
	"example", "test", "sample", "demo", "data",
	"info", "site", "web", "app", "api",
}

var urlPaths = []string{
	"", "/about", "/contact", "/products", "/services", "/blog", "/api", "/docs",
}

// cardPrefixes pairs an issuer prefix with the card's total digit count.
var cardPrefixes = []struct {
	prefix string
	length int
}{
	{"4", 16},
	{"51", 16},
	{"52", 16},
	{"53", 16},
	{"54", 16},
	{"55", 16},
	{"34", 15},
	{"37", 15},
	{"6011", 16},
	{"65", 16},
}

// ibanCountries pairs an ISO country code with its BBAN digit count.
var ibanCountries = []struct {
	code string
	bban int
}{
	{"DE", 18},
	{"FR", 23},
	{"GB", 18},
	{"ES", 20},
	{"IT", 23},
	{"NL", 14},
	{"BE", 12},
	{"AT", 16},
	{"CH", 17},
	{"PL", 24},
}

var defaultDateSpec = mustDateSpec(defaultDateStart, defaultDateEnd)

func mustDateSpec(start, end string) *schema.FieldSpec {
	raw := []schema.RawField{{Name: "d", Spec: []interface{}{"date", start, end}}}
	s, err := schema.Compile(raw, nil)
	if err != nil {
		panic(err)
	}
	spec, _ := s.Lookup("d")
	return spec
}

// Dispatcher generates values for compiled field specs against one locale
// table and one custom provider registry.
type Dispatcher struct {
	table    *locale.Table
	registry *provider.Registry
}

// New returns a dispatcher over the given locale table and registry. A nil
// registry means no custom providers are available.
func New(table *locale.Table, registry *provider.Registry) *Dispatcher {
	return &Dispatcher{table: table, registry: registry}
}

// Generate produces one value for the spec, advancing the stream. Specs
// that came out of schema.Compile only fail here when they name a custom
// provider that has since been removed.
func (d *Dispatcher) Generate(st *rng.Stream, spec *schema.FieldSpec) (types.Value, error) {
	switch spec.Kind {
	case schema.SpecIntRange:
		return types.IntValue(st.Int64Range(spec.IntMin, spec.IntMax)), nil
	case schema.SpecFloatRange:
		return types.FloatValue(st.Float64Range(spec.FloatMin, spec.FloatMax)), nil
	case schema.SpecTextRange:
		return types.StringValue(d.Text(st, spec.MinChars, spec.MaxChars)), nil
	case schema.SpecDateRange:
		return types.StringValue(d.dateInRange(st, spec.StartDay, spec.EndDay)), nil
	case schema.SpecChoice:
		return types.StringValue(spec.Options[st.IntN(len(spec.Options))]), nil
	case schema.SpecCustom:
		if d.registry == nil {
			return types.Value{}, errors.NewProviderError(errors.CodeProviderNotFound,
				spec.TypeName, "provider is not registered")
		}
		p, ok := d.registry.Lookup(spec.TypeName)
		if !ok {
			return types.Value{}, errors.NewProviderError(errors.CodeProviderNotFound,
				spec.TypeName, "provider is not registered")
		}
		return types.StringValue(p.Generate(st)), nil
	case schema.SpecSimple:
		return d.generateSimple(st, spec.TypeName)
	default:
		return types.Value{}, errors.NewInternalError(
			fmt.Sprintf("unhandled spec kind %d", spec.Kind), nil)
	}
}

func (d *Dispatcher) generateSimple(st *rng.Stream, typeName string) (types.Value, error) {
	switch typeName {
	case "name":
		return types.StringValue(d.Name(st)), nil
	case "first_name":
		return types.StringValue(d.FirstName(st)), nil
	case "last_name":
		return types.StringValue(d.LastName(st)), nil
	case "email":
		return types.StringValue(d.Email(st)), nil
	case "safe_email":
		return types.StringValue(d.SafeEmail(st)), nil
	case "free_email":
		return types.StringValue(d.FreeEmail(st)), nil
	case "uuid":
		return types.StringValue(d.UUID(st)), nil
	case "md5":
		return types.StringValue(d.MD5(st)), nil
	case "sha256":
		return types.StringValue(d.SHA256(st)), nil
	case "int":
		return types.IntValue(st.Int64Range(defaultIntMin, defaultIntMax)), nil
	case "float":
		return types.FloatValue(st.Float64Range(defaultFloatMin, defaultFloatMax)), nil
	case "phone":
		return types.StringValue(d.Phone(st)), nil
	case "address":
		return types.StringValue(d.Address(st)), nil
	case "street_address":
		return types.StringValue(d.StreetAddress(st)), nil
	case "city":
		return types.StringValue(d.City(st)), nil
	case "state":
		return types.StringValue(d.State(st)), nil
	case "country":
		return types.StringValue(d.Country(st)), nil
	case "zip_code":
		return types.StringValue(d.ZipCode(st)), nil
	case "company":
		return types.StringValue(d.Company(st)), nil
	case "job":
		return types.StringValue(d.Job(st)), nil
	case "catch_phrase":
		return types.StringValue(d.CatchPhrase(st)), nil
	case "url":
		return types.StringValue(d.URL(st)), nil
	case "domain_name":
		return types.StringValue(d.DomainName(st)), nil
	case "ipv4":
		return types.StringValue(d.IPv4(st)), nil
	case "ipv6":
		return types.StringValue(d.IPv6(st)), nil
	case "mac_address":
		return types.StringValue(d.MACAddress(st)), nil
	case "color":
		return types.StringValue(d.Color(st)), nil
	case "hex_color":
		return types.StringValue(d.HexColor(st)), nil
	case "rgb_color":
		r, g, b := d.RGBColor(st)
		return types.RGBValue(r, g, b), nil
	case "credit_card":
		return types.StringValue(d.CreditCard(st)), nil
	case "iban":
		return types.StringValue(d.IBAN(st)), nil
	case "date":
		return types.StringValue(d.Date(st, defaultDateSpec.StartDay, defaultDateSpec.EndDay)), nil
	case "datetime":
		return types.StringValue(d.DateTime(st, defaultDateSpec.StartDay, defaultDateSpec.EndDay)), nil
	case "sentence":
		return types.StringValue(d.Sentence(st, defaultSentenceWords)), nil
	case "paragraph":
		return types.StringValue(d.Paragraph(st, defaultParagraphSentences)), nil
	case "text":
		return types.StringValue(d.Text(st, defaultTextMinChars, defaultTextMaxChars)), nil
	default:
		return types.Value{}, errors.NewInternalError(
			fmt.Sprintf("unhandled built-in type %q", typeName), nil)
	}
}

func choose(st *rng.Stream, list []string) string {
	return list[st.IntN(len(list))]
}

// Name returns "First Last".
func (d *Dispatcher) Name(st *rng.Stream) string {
	first := choose(st, d.table.FirstNames)
	last := choose(st, d.table.LastNames)
	return first + " " + last
}

func (d *Dispatcher) FirstName(st *rng.Stream) string {
	return choose(st, d.table.FirstNames)
}

func (d *Dispatcher) LastName(st *rng.Stream) string {
	return choose(st, d.table.LastNames)
}

// Email returns addresses shaped like "alice042@gmail.com": a lowercased
// first name, a zero-padded number in 1..999, and a common domain.
func (d *Dispatcher) Email(st *rng.Stream) string {
	return d.emailWith(st, d.table.EmailDomains)
}

// SafeEmail draws its domain from the reserved example.* set.
func (d *Dispatcher) SafeEmail(st *rng.Stream) string {
	return d.emailWith(st, d.table.SafeEmailDomains)
}

// FreeEmail draws its domain from well-known free mail providers.
func (d *Dispatcher) FreeEmail(st *rng.Stream) string {
	return d.emailWith(st, d.table.FreeEmailDomains)
}

func (d *Dispatcher) emailWith(st *rng.Stream, domains []string) string {
	name := strings.ToLower(choose(st, d.table.FirstNames))
	num := st.Int64Range(1, 999)
	domain := choose(st, domains)
	return fmt.Sprintf("%s%03d@%s", name, num, domain)
}

// UUID returns a random version 4 UUID in canonical lowercase form.
func (d *Dispatcher) UUID(st *rng.Stream) string {
	var raw [16]byte
	st.Fill(raw[:])
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		// FromBytes only fails on length, and raw is always 16 bytes.
		panic(err)
	}
	return id.String()
}

// MD5 returns a random 32-character lowercase hex string.
func (d *Dispatcher) MD5(st *rng.Stream) string {
	var raw [16]byte
	st.Fill(raw[:])
	return hex.EncodeToString(raw[:])
}

// SHA256 returns a random 64-character lowercase hex string.
func (d *Dispatcher) SHA256(st *rng.Stream) string {
	var raw [32]byte
	st.Fill(raw[:])
	return hex.EncodeToString(raw[:])
}

// Phone returns "(NXX) NXX-XXXX" where N is 2..9.
func (d *Dispatcher) Phone(st *rng.Stream) string {
	area1 := st.Int64Range(2, 9)
	area2 := st.Int64Range(0, 9)
	area3 := st.Int64Range(0, 9)
	ex1 := st.Int64Range(2, 9)
	ex2 := st.Int64Range(0, 9)
	ex3 := st.Int64Range(0, 9)
	sub := st.Int64Range(0, 9999)
	return fmt.Sprintf("(%d%d%d) %d%d%d-%04d", area1, area2, area3, ex1, ex2, ex3, sub)
}

// StreetAddress returns "123 Main Street".
func (d *Dispatcher) StreetAddress(st *rng.Stream) string {
	number := st.Int64Range(1, 9999)
	name := choose(st, d.table.StreetNames)
	suffix := choose(st, d.table.StreetSuffixes)
	return fmt.Sprintf("%d %s %s", number, name, suffix)
}

// Address returns "street, city, ST 12345".
func (d *Dispatcher) Address(st *rng.Stream) string {
	street := d.StreetAddress(st)
	city := d.City(st)
	abbr := choose(st, d.table.StateAbbrs)
	zip := d.ZipCode(st)
	return fmt.Sprintf("%s, %s, %s %s", street, city, abbr, zip)
}

func (d *Dispatcher) City(st *rng.Stream) string {
	return choose(st, d.table.Cities)
}

func (d *Dispatcher) State(st *rng.Stream) string {
	return choose(st, d.table.States)
}

func (d *Dispatcher) Country(st *rng.Stream) string {
	return choose(st, d.table.Countries)
}

// ZipCode returns a five-digit code in 10000..99999.
func (d *Dispatcher) ZipCode(st *rng.Stream) string {
	return fmt.Sprintf("%05d", st.Int64Range(10000, 99999))
}

// Company returns "Prefix Suffix", e.g. "Global Dynamics".
func (d *Dispatcher) Company(st *rng.Stream) string {
	prefix := choose(st, d.table.CompanyPrefixes)
	suffix := choose(st, d.table.CompanySuffixes)
	return prefix + " " + suffix
}

func (d *Dispatcher) Job(st *rng.Stream) string {
	return choose(st, d.table.JobTitles)
}

func (d *Dispatcher) CatchPhrase(st *rng.Stream) string {
	adj := choose(st, d.table.CatchPhraseAdjectives)
	noun := choose(st, d.table.CatchPhraseNouns)
	return adj + " " + noun
}

// DomainName returns "word.tld".
func (d *Dispatcher) DomainName(st *rng.Stream) string {
	word := choose(st, domainWords)
	tld := choose(st, d.table.TLDs)
	return word + "." + tld
}

// URL returns "https://domain/path" with a short well-known path.
func (d *Dispatcher) URL(st *rng.Stream) string {
	domain := d.DomainName(st)
	path := choose(st, urlPaths)
	return "https://" + domain + path
}

// IPv4 avoids the all-zeros first octet and the broadcast last octet.
func (d *Dispatcher) IPv4(st *rng.Stream) string {
	a := st.Int64Range(1, 255)
	b := st.Int64Range(0, 255)
	c := st.Int64Range(0, 255)
	e := st.Int64Range(1, 254)
	return fmt.Sprintf("%d.%d.%d.%d", a, b, c, e)
}

// IPv6 returns eight lowercase 4-digit hex groups.
func (d *Dispatcher) IPv6(st *rng.Stream) string {
	var sb strings.Builder
	sb.Grow(39)
	for i := 0; i < 8; i++ {
		if i > 0 {
			sb.WriteByte(':')
		}
		fmt.Fprintf(&sb, "%04x", st.Int64Range(0, 65535))
	}
	return sb.String()
}

// MACAddress returns six colon-separated lowercase hex bytes.
func (d *Dispatcher) MACAddress(st *rng.Stream) string {
	var raw [6]byte
	st.Fill(raw[:])
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		raw[0], raw[1], raw[2], raw[3], raw[4], raw[5])
}

func (d *Dispatcher) Color(st *rng.Stream) string {
	return choose(st, d.table.ColorNames)
}

// HexColor returns "#rrggbb".
func (d *Dispatcher) HexColor(st *rng.Stream) string {
	r := st.Int64Range(0, 255)
	g := st.Int64Range(0, 255)
	b := st.Int64Range(0, 255)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBColor returns the three channels as raw bytes.
func (d *Dispatcher) RGBColor(st *rng.Stream) (r, g, b uint8) {
	r = uint8(st.Int64Range(0, 255))
	g = uint8(st.Int64Range(0, 255))
	b = uint8(st.Int64Range(0, 255))
	return r, g, b
}

// CreditCard returns a card number with a real issuer prefix and a valid
// Luhn check digit.
func (d *Dispatcher) CreditCard(st *rng.Stream) string {
	entry := cardPrefixes[st.IntN(len(cardPrefixes))]

	var sb strings.Builder
	sb.Grow(entry.length)
	sb.WriteString(entry.prefix)
	for sb.Len() < entry.length-1 {
		sb.WriteByte(byte('0' + st.IntN(10)))
	}
	body := sb.String()
	return body + string(rune('0'+checksum.LuhnCheckDigit(body)))
}

// IBAN returns a structurally valid IBAN with correct mod-97 check digits
// and an all-digit BBAN.
func (d *Dispatcher) IBAN(st *rng.Stream) string {
	entry := ibanCountries[st.IntN(len(ibanCountries))]

	var sb strings.Builder
	sb.Grow(entry.bban)
	for i := 0; i < entry.bban; i++ {
		sb.WriteByte(byte('0' + st.IntN(10)))
	}
	bban := sb.String()
	check := checksum.IBANCheckDigits(entry.code, bban)
	return entry.code + check + bban
}

// Date draws a day uniformly from the inclusive range and renders it as
// YYYY-MM-DD.
func (d *Dispatcher) Date(st *rng.Stream, startDay, endDay int64) string {
	return d.dateInRange(st, startDay, endDay)
}

func (d *Dispatcher) dateInRange(st *rng.Stream, startDay, endDay int64) string {
	return schema.FormatDay(st.Int64Range(startDay, endDay))
}

// DateTime appends a uniformly drawn wall time to a drawn date, rendered
// as "YYYY-MM-DD HH:MM:SS".
func (d *Dispatcher) DateTime(st *rng.Stream, startDay, endDay int64) string {
	date := d.dateInRange(st, startDay, endDay)
	hour := st.Int64Range(0, 23)
	minute := st.Int64Range(0, 59)
	second := st.Int64Range(0, 59)
	return fmt.Sprintf("%s %02d:%02d:%02d", date, hour, minute, second)
}

// Sentence returns wordCount lorem words, first capitalized, ending with
// a period. Zero words yields the empty string.
func (d *Dispatcher) Sentence(st *rng.Stream, wordCount int) string {
	if wordCount <= 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < wordCount; i++ {
		word := choose(st, d.table.LoremWords)
		if i == 0 {
			sb.WriteString(capitalize(word))
		} else {
			sb.WriteByte(' ')
			sb.WriteString(word)
		}
	}
	sb.WriteByte('.')
	return sb.String()
}

// Paragraph returns sentenceCount sentences of 5..15 words each, joined
// by single spaces.
func (d *Dispatcher) Paragraph(st *rng.Stream, sentenceCount int) string {
	if sentenceCount <= 0 {
		return ""
	}
	sentences := make([]string, sentenceCount)
	for i := range sentences {
		words := int(st.Int64Range(5, 15))
		sentences[i] = d.Sentence(st, words)
	}
	return strings.Join(sentences, " ")
}

// Text returns lorem text between minChars and maxChars long. Words are
// appended until the drawn target length is reached, then the result is
// clipped to maxChars.
func (d *Dispatcher) Text(st *rng.Stream, minChars, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	target := maxChars
	if minChars < maxChars {
		target = int(st.Int64Range(int64(minChars), int64(maxChars)))
	}

	var sb strings.Builder
	sb.Grow(target)
	for sb.Len() < target {
		word := choose(st, d.table.LoremWords)
		if sb.Len() == 0 {
			sb.WriteString(capitalize(word))
		} else {
			sb.WriteByte(' ')
			sb.WriteString(word)
		}
	}
	out := sb.String()
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return out
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	c := word[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return string(c) + word[1:]
}
