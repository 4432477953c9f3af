package cards

// CatalogCardSpec carries the constructor arguments of a CatalogCard.
// Empty strings mean unknown, a nil PriceUSD means no price.
type CatalogCardSpec struct {
	Name            string
	OracleID        string
	SetCode         string
	CollectorNumber string
	ManaCost        string
	TypeLine        string
	Rarity          string
	OracleText      string
	PriceUSD        *float64
	ImageURL        string
	Colors          []Color
}

// CatalogCard is a card enriched with external catalog data. When the
// catalog identifier is known it overrides the slug as identity, otherwise
// the card behaves like a Basic card.
type CatalogCard struct {
	base            Basic
	oracleID        string
	setCode         string
	collectorNumber string
	manaCost        string
	typeLine        string
	rarity          string
	oracleText      string
	priceUSD        *float64
	imageURL        string
	colors          []Color
}

func NewCatalogCard(spec CatalogCardSpec) (CatalogCard, error) {
	base, err := NewCard(spec.Name)
	if err != nil {
		return CatalogCard{}, err
	}

	return CatalogCard{
		base:            base,
		oracleID:        spec.OracleID,
		setCode:         spec.SetCode,
		collectorNumber: spec.CollectorNumber,
		manaCost:        spec.ManaCost,
		typeLine:        spec.TypeLine,
		rarity:          spec.Rarity,
		oracleText:      spec.OracleText,
		priceUSD:        copyFloat(spec.PriceUSD),
		imageURL:        spec.ImageURL,
		colors:          spec.Colors,
	}, nil
}

func (c CatalogCard) Name() string {
	return c.base.name
}

func (c CatalogCard) Slug() string {
	return c.base.slug
}

func (c CatalogCard) OracleID() string {
	return c.oracleID
}

func (c CatalogCard) SetCode() string {
	return c.setCode
}

func (c CatalogCard) CollectorNumber() string {
	return c.collectorNumber
}

func (c CatalogCard) ManaCost() string {
	return c.manaCost
}

func (c CatalogCard) TypeLine() string {
	return c.typeLine
}

func (c CatalogCard) Rarity() string {
	return c.rarity
}

func (c CatalogCard) OracleText() string {
	return c.oracleText
}

// PriceUSD returns the USD price and whether one is known.
func (c CatalogCard) PriceUSD() (float64, bool) {
	if c.priceUSD == nil {
		return 0, false
	}

	return *c.priceUSD, true
}

func (c CatalogCard) ImageURL() string {
	return c.imageURL
}

func (c CatalogCard) Colors() []Color {
	return c.colors
}

func (c CatalogCard) Tags() []string {
	return c.base.tags
}

func (c CatalogCard) Source() string {
	return c.base.source
}

func (c CatalogCard) Identity() string {
	if c.oracleID == "" {
		return c.base.slug
	}

	return "oracle" + identitySep + c.oracleID
}

func (c CatalogCard) Equal(other Card) bool {
	if other == nil {
		return false
	}

	if o, ok := other.(CatalogCard); ok {
		return c.Identity() == o.Identity()
	}

	return c.base.slug == other.Slug()
}

func (c CatalogCard) WithTag(tag string) Card {
	c.base.tags = appendTag(c.base.tags, tag)

	return c
}

func (c CatalogCard) WithSource(source string) Card {
	c.base.source = source

	return c
}

func (c CatalogCard) Property(name string) (any, bool) {
	switch name {
	case "oracle_id":
		return nilIfEmpty(c.oracleID), true
	case "set_code":
		return nilIfEmpty(c.setCode), true
	case "collector_number":
		return nilIfEmpty(c.collectorNumber), true
	case "mana_cost":
		return nilIfEmpty(c.manaCost), true
	case "type_line":
		return nilIfEmpty(c.typeLine), true
	case "rarity":
		return nilIfEmpty(c.rarity), true
	case "oracle_text":
		return nilIfEmpty(c.oracleText), true
	case "price_usd":
		if c.priceUSD == nil {
			return nil, true
		}

		return *c.priceUSD, true
	case "image_url":
		return nilIfEmpty(c.imageURL), true
	case "colors":
		return ColorsString(c.colors), true
	default:
		return c.base.Property(name)
	}
}

func (c CatalogCard) String() string {
	return c.base.name
}
