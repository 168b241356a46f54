package fabrica

import (
	"fmt"

	"github.com/fabrica/fabrica/internal/assemble"
	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
)

// strings runs one string-valued batch, with or without the uniqueness
// constraint.
func (g *Generator) strings(n int, unique bool, gen func(*rng.Stream) string) ([]string, error) {
	if unique {
		return assemble.UniqueStrings(g.stream, n, gen)
	}
	return assemble.Strings(g.stream, n, gen)
}

// Names generates n full names. With unique set, duplicates are retried
// under the standard budget.
func (g *Generator) Names(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Name)
}

func (g *Generator) FirstNames(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.FirstName)
}

func (g *Generator) LastNames(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.LastName)
}

func (g *Generator) Emails(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Email)
}

func (g *Generator) SafeEmails(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.SafeEmail)
}

func (g *Generator) FreeEmails(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.FreeEmail)
}

func (g *Generator) UUIDs(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.UUID)
}

func (g *Generator) MD5s(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.MD5)
}

func (g *Generator) SHA256s(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.SHA256)
}

// Integers generates n integers in the inclusive range [min, max].
func (g *Generator) Integers(n int, min, max int64) ([]int64, error) {
	if min > max {
		return nil, errors.NewSchemaError(errors.CodeInvalidRange, "int",
			fmt.Sprintf("min %d exceeds max %d", min, max))
	}
	return assemble.Ints(g.stream, n, func(st *rng.Stream) int64 {
		return st.Int64Range(min, max)
	})
}

// Floats generates n floats in the inclusive range [min, max].
func (g *Generator) Floats(n int, min, max float64) ([]float64, error) {
	if min > max {
		return nil, errors.NewSchemaError(errors.CodeInvalidRange, "float",
			fmt.Sprintf("min %g exceeds max %g", min, max))
	}
	return assemble.Floats(g.stream, n, func(st *rng.Stream) float64 {
		return st.Float64Range(min, max)
	})
}

func (g *Generator) PhoneNumbers(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Phone)
}

func (g *Generator) Addresses(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Address)
}

func (g *Generator) StreetAddresses(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.StreetAddress)
}

func (g *Generator) Cities(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.City)
}

func (g *Generator) States(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.State)
}

func (g *Generator) Countries(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Country)
}

func (g *Generator) ZipCodes(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.ZipCode)
}

func (g *Generator) Companies(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Company)
}

func (g *Generator) Jobs(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Job)
}

func (g *Generator) CatchPhrases(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.CatchPhrase)
}

func (g *Generator) URLs(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.URL)
}

func (g *Generator) DomainNames(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.DomainName)
}

func (g *Generator) IPv4s(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.IPv4)
}

func (g *Generator) IPv6s(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.IPv6)
}

func (g *Generator) MACAddresses(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.MACAddress)
}

func (g *Generator) Colors(n int, unique bool) ([]string, error) {
	return g.strings(n, unique, g.dispatcher.Color)
}

func (g *Generator) HexColors(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.HexColor)
}

// RGBColors generates n colors as raw channel triples.
func (g *Generator) RGBColors(n int) ([][3]uint8, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}
	out := make([][3]uint8, n)
	for i := range out {
		r, gc, b := g.dispatcher.RGBColor(g.stream)
		out[i] = [3]uint8{r, gc, b}
	}
	return out, nil
}

// CreditCards generates n card numbers with valid Luhn check digits.
func (g *Generator) CreditCards(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.CreditCard)
}

// IBANs generates n IBANs with valid mod-97 check digits.
func (g *Generator) IBANs(n int) ([]string, error) {
	return g.strings(n, false, g.dispatcher.IBAN)
}

// Dates generates n dates drawn uniformly from the inclusive range
// [start, end], both YYYY-MM-DD.
func (g *Generator) Dates(n int, start, end string) ([]string, error) {
	s, e, err := schema.DateBounds(start, end)
	if err != nil {
		return nil, err
	}
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.Date(st, s, e)
	})
}

// DatesOfBirth generates n birth dates for ages in [minAge, maxAge].
// Ages are measured against the fixed reference date 2024-01-01 so that
// output depends only on the seed, never on the wall clock.
func (g *Generator) DatesOfBirth(n int, minAge, maxAge int) ([]string, error) {
	s, e, err := birthBounds(minAge, maxAge)
	if err != nil {
		return nil, err
	}
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.Date(st, s, e)
	})
}

func birthBounds(minAge, maxAge int) (int64, int64, error) {
	if minAge < 0 || minAge > maxAge {
		return 0, 0, errors.NewSchemaError(errors.CodeInvalidRange, "date_of_birth",
			fmt.Sprintf("min age %d exceeds max age %d", minAge, maxAge))
	}
	const referenceYear = 2024
	start := fmt.Sprintf("%04d-01-01", referenceYear-maxAge-1)
	end := fmt.Sprintf("%04d-01-01", referenceYear-minAge)
	return schema.DateBounds(start, end)
}

// DateTimes generates n timestamps with dates in [start, end] and
// uniformly drawn wall times, formatted "YYYY-MM-DD HH:MM:SS".
func (g *Generator) DateTimes(n int, start, end string) ([]string, error) {
	s, e, err := schema.DateBounds(start, end)
	if err != nil {
		return nil, err
	}
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.DateTime(st, s, e)
	})
}

// Sentences generates n lorem sentences of wordCount words each.
func (g *Generator) Sentences(n, wordCount int) ([]string, error) {
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.Sentence(st, wordCount)
	})
}

// Paragraphs generates n lorem paragraphs of sentenceCount sentences.
func (g *Generator) Paragraphs(n, sentenceCount int) ([]string, error) {
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.Paragraph(st, sentenceCount)
	})
}

// Texts generates n lorem blocks between minChars and maxChars long.
func (g *Generator) Texts(n, minChars, maxChars int) ([]string, error) {
	return assemble.Strings(g.stream, n, func(st *rng.Stream) string {
		return g.dispatcher.Text(st, minChars, maxChars)
	})
}

// Single-value forms. These advance the stream exactly like a batch of
// one.

func (g *Generator) Name() string      { return g.dispatcher.Name(g.stream) }
func (g *Generator) FirstName() string { return g.dispatcher.FirstName(g.stream) }
func (g *Generator) LastName() string  { return g.dispatcher.LastName(g.stream) }
func (g *Generator) Email() string     { return g.dispatcher.Email(g.stream) }
func (g *Generator) SafeEmail() string { return g.dispatcher.SafeEmail(g.stream) }
func (g *Generator) FreeEmail() string { return g.dispatcher.FreeEmail(g.stream) }
func (g *Generator) UUID() string      { return g.dispatcher.UUID(g.stream) }
func (g *Generator) MD5() string       { return g.dispatcher.MD5(g.stream) }
func (g *Generator) SHA256() string    { return g.dispatcher.SHA256(g.stream) }

func (g *Generator) Integer(min, max int64) (int64, error) {
	if min > max {
		return 0, errors.NewSchemaError(errors.CodeInvalidRange, "int",
			fmt.Sprintf("min %d exceeds max %d", min, max))
	}
	return g.stream.Int64Range(min, max), nil
}

func (g *Generator) Float(min, max float64) (float64, error) {
	if min > max {
		return 0, errors.NewSchemaError(errors.CodeInvalidRange, "float",
			fmt.Sprintf("min %g exceeds max %g", min, max))
	}
	return g.stream.Float64Range(min, max), nil
}

func (g *Generator) PhoneNumber() string   { return g.dispatcher.Phone(g.stream) }
func (g *Generator) Address() string       { return g.dispatcher.Address(g.stream) }
func (g *Generator) StreetAddress() string { return g.dispatcher.StreetAddress(g.stream) }
func (g *Generator) City() string          { return g.dispatcher.City(g.stream) }
func (g *Generator) State() string         { return g.dispatcher.State(g.stream) }
func (g *Generator) Country() string       { return g.dispatcher.Country(g.stream) }
func (g *Generator) ZipCode() string       { return g.dispatcher.ZipCode(g.stream) }
func (g *Generator) Company() string       { return g.dispatcher.Company(g.stream) }
func (g *Generator) Job() string           { return g.dispatcher.Job(g.stream) }
func (g *Generator) CatchPhrase() string   { return g.dispatcher.CatchPhrase(g.stream) }
func (g *Generator) URL() string           { return g.dispatcher.URL(g.stream) }
func (g *Generator) DomainName() string    { return g.dispatcher.DomainName(g.stream) }
func (g *Generator) IPv4() string          { return g.dispatcher.IPv4(g.stream) }
func (g *Generator) IPv6() string          { return g.dispatcher.IPv6(g.stream) }
func (g *Generator) MACAddress() string    { return g.dispatcher.MACAddress(g.stream) }
func (g *Generator) Color() string         { return g.dispatcher.Color(g.stream) }
func (g *Generator) HexColor() string      { return g.dispatcher.HexColor(g.stream) }

func (g *Generator) RGBColor() (r, gc, b uint8) {
	return g.dispatcher.RGBColor(g.stream)
}

func (g *Generator) CreditCard() string { return g.dispatcher.CreditCard(g.stream) }
func (g *Generator) IBAN() string       { return g.dispatcher.IBAN(g.stream) }

func (g *Generator) Date(start, end string) (string, error) {
	s, e, err := schema.DateBounds(start, end)
	if err != nil {
		return "", err
	}
	return g.dispatcher.Date(g.stream, s, e), nil
}

func (g *Generator) DateOfBirth(minAge, maxAge int) (string, error) {
	s, e, err := birthBounds(minAge, maxAge)
	if err != nil {
		return "", err
	}
	return g.dispatcher.Date(g.stream, s, e), nil
}

func (g *Generator) DateTime(start, end string) (string, error) {
	s, e, err := schema.DateBounds(start, end)
	if err != nil {
		return "", err
	}
	return g.dispatcher.DateTime(g.stream, s, e), nil
}

func (g *Generator) Sentence(wordCount int) string {
	return g.dispatcher.Sentence(g.stream, wordCount)
}

func (g *Generator) Paragraph(sentenceCount int) string {
	return g.dispatcher.Paragraph(g.stream, sentenceCount)
}

func (g *Generator) Text(minChars, maxChars int) string {
	return g.dispatcher.Text(g.stream, minChars, maxChars)
}
