package cards

import (
	"strconv"
	"strings"
)

const identitySep = "\x1f"

// PrintSpec carries the constructor arguments of a Print. Empty strings on
// Condition and CollectorNumber mean unknown, a nil Price means no price.
type PrintSpec struct {
	Name            string
	Set             string
	Foil            bool
	Condition       string
	Language        string
	CollectorNumber string
	Price           *float64
}

// Print is a concrete printing of a card. Unlike Basic every field takes
// part in the identity, two printings differing only in price end up in
// separate buckets.
type Print struct {
	base            Basic
	set             string
	foil            bool
	condition       string
	language        string
	collectorNumber string
	price           *float64
}

func NewPrint(spec PrintSpec) (Print, error) {
	base, err := NewCard(spec.Name)
	if err != nil {
		return Print{}, err
	}

	lang := spec.Language
	if lang == "" {
		lang = "en"
	}

	return Print{
		base:            base,
		set:             spec.Set,
		foil:            spec.Foil,
		condition:       spec.Condition,
		language:        lang,
		collectorNumber: spec.CollectorNumber,
		price:           copyFloat(spec.Price),
	}, nil
}

func (p Print) Name() string {
	return p.base.name
}

func (p Print) Slug() string {
	return p.base.slug
}

func (p Print) Set() string {
	return p.set
}

func (p Print) Foil() bool {
	return p.foil
}

func (p Print) Condition() string {
	return p.condition
}

func (p Print) Language() string {
	return p.language
}

func (p Print) CollectorNumber() string {
	return p.collectorNumber
}

// Price returns the price of the print and whether one is known.
func (p Print) Price() (float64, bool) {
	if p.price == nil {
		return 0, false
	}

	return *p.price, true
}

func (p Print) Tags() []string {
	return p.base.tags
}

func (p Print) Source() string {
	return p.base.source
}

func (p Print) Identity() string {
	price := ""
	if p.price != nil {
		price = strconv.FormatFloat(*p.price, 'f', -1, 64)
	}

	return strings.Join([]string{
		"print",
		p.base.name,
		p.set,
		strconv.FormatBool(p.foil),
		p.condition,
		p.language,
		p.collectorNumber,
		price,
	}, identitySep)
}

// Equal compares two prints field by field. An unknown condition or
// collector number on either side matches anything, which makes print
// equality intentionally non transitive. Against any other variant only
// the slug is compared.
func (p Print) Equal(other Card) bool {
	if other == nil {
		return false
	}

	o, ok := other.(Print)
	if !ok {
		return p.base.slug == other.Slug()
	}

	return p.base.name == o.base.name &&
		p.set == o.set &&
		p.foil == o.foil &&
		p.language == o.language &&
		optionalEq(p.condition, o.condition) &&
		optionalEq(p.collectorNumber, o.collectorNumber) &&
		floatEq(p.price, o.price)
}

func (p Print) WithTag(tag string) Card {
	p.base.tags = appendTag(p.base.tags, tag)

	return p
}

func (p Print) WithSource(source string) Card {
	p.base.source = source

	return p
}

func (p Print) Property(name string) (any, bool) {
	switch name {
	case "set":
		return p.set, true
	case "foil":
		return p.foil, true
	case "condition":
		return nilIfEmpty(p.condition), true
	case "language":
		return p.language, true
	case "collector_number":
		return nilIfEmpty(p.collectorNumber), true
	case "price":
		if p.price == nil {
			return nil, true
		}

		return *p.price, true
	default:
		return p.base.Property(name)
	}
}

func (p Print) String() string {
	return p.base.name + " (" + p.set + ")"
}

// optionalEq treats an empty value on either side as a wildcard.
func optionalEq(a, b string) bool {
	if a == "" || b == "" {
		return true
	}

	return a == b
}

func floatEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}
