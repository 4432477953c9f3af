package parsing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
)

type cardShape string

const (
	shapeBasic   cardShape = "card"
	shapePrint   cardShape = "print"
	shapeCatalog cardShape = "catalog"
)

// Columns whose presence marks a CSV as carrying catalog enriched cards.
var catalogDetectColumns = []string{
	"Set Code", "Oracle ID", "Mana Cost", "Type Line",
	"Rarity", "Oracle Text", "Colors", "Image URL",
}

// Columns whose presence marks a CSV as carrying prints.
var printDetectColumns = []string{"Set Name", "Foil", "Price"}

const minCatalogColumns = 3

// CSVReader parses a CSV collection export. The card shape is detected
// once per file from the header: at least three catalog columns win over
// at least one print column, anything else falls back to basic cards.
type CSVReader struct{}

func (CSVReader) Read(r io.Reader) (*stacks.Stack, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &FormatError{Message: "csv content has no header"}
		}

		return nil, &FormatError{Message: fmt.Sprintf("failed to read csv header: %v", err)}
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	shape := detectShape(columns)
	if err := validateHeader(columns, shape); err != nil {
		return nil, err
	}

	stack := stacks.New()
	// The header is row 1, data starts at row 2.
	rowNum := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, newRowErr(rowNum, "malformed csv record: %v", err)
		}

		card, count, err := parseRow(rec, columns, rowNum, shape)
		if err != nil {
			return nil, err
		}
		for n := 0; n < count; n++ {
			stack.Add(card)
		}
	}

	return stack, nil
}

func detectShape(columns map[string]int) cardShape {
	catalogHits := 0
	for _, c := range catalogDetectColumns {
		if _, ok := columns[c]; ok {
			catalogHits++
		}
	}
	if catalogHits >= minCatalogColumns {
		return shapeCatalog
	}

	for _, c := range printDetectColumns {
		if _, ok := columns[c]; ok {
			return shapePrint
		}
	}

	return shapeBasic
}

func validateHeader(columns map[string]int, shape cardShape) error {
	var missing []string
	for _, c := range []string{"Count", "Card Name"} {
		if _, ok := columns[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &FormatError{
			Message: fmt.Sprintf("missing required columns %v for %s format", missing, shape),
		}
	}

	if shape == shapeCatalog {
		dataColumns := append([]string{"Price USD"}, catalogDetectColumns...)
		hasData := false
		for _, c := range dataColumns {
			if _, ok := columns[c]; ok {
				hasData = true

				break
			}
		}
		if !hasData {
			return &FormatError{Message: "catalog format requires at least one catalog data column"}
		}
	}

	return nil
}

func parseRow(rec []string, columns map[string]int, rowNum int, shape cardShape) (cards.Card, int, error) {
	rawCount := strings.TrimSpace(field(rec, columns, "Count"))
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		return nil, 0, newRowErr(rowNum, "invalid count %q", rawCount)
	}
	if count <= 0 {
		return nil, 0, newRowErr(rowNum, "count must be positive, got %d", count)
	}

	name := strings.TrimSpace(field(rec, columns, "Card Name"))
	if name == "" {
		return nil, 0, newRowErr(rowNum, "card name must not be empty")
	}

	var card cards.Card
	switch shape {
	case shapeCatalog:
		card, err = parseCatalogRow(rec, columns, rowNum, name)
	case shapePrint:
		card, err = parsePrintRow(rec, columns, rowNum, name)
	default:
		card, err = cards.NewCard(name)
	}
	if err != nil {
		return nil, 0, err
	}

	for _, tag := range parseTags(field(rec, columns, "Tags")) {
		card = card.WithTag(tag)
	}

	return card, count, nil
}

func parsePrintRow(rec []string, columns map[string]int, rowNum int, name string) (cards.Card, error) {
	price, err := optionalFloat(field(rec, columns, "Price"), "price", rowNum)
	if err != nil {
		return nil, err
	}

	return cards.NewPrint(cards.PrintSpec{
		Name:            name,
		Set:             strings.TrimSpace(field(rec, columns, "Set Name")),
		Foil:            parseBool(field(rec, columns, "Foil")),
		CollectorNumber: strings.TrimSpace(field(rec, columns, "Collector Number")),
		Price:           price,
	})
}

func parseCatalogRow(rec []string, columns map[string]int, rowNum int, name string) (cards.Card, error) {
	price, err := optionalFloat(field(rec, columns, "Price USD"), "price", rowNum)
	if err != nil {
		return nil, err
	}

	// An unparseable color list does not fail the row, the colors are
	// simply unknown then.
	colors, _ := cards.ParseColors(field(rec, columns, "Colors"))

	return cards.NewCatalogCard(cards.CatalogCardSpec{
		Name:            name,
		OracleID:        strings.TrimSpace(field(rec, columns, "Oracle ID")),
		SetCode:         strings.TrimSpace(field(rec, columns, "Set Code")),
		CollectorNumber: strings.TrimSpace(field(rec, columns, "Collector Number")),
		ManaCost:        strings.TrimSpace(field(rec, columns, "Mana Cost")),
		TypeLine:        strings.TrimSpace(field(rec, columns, "Type Line")),
		Rarity:          strings.TrimSpace(field(rec, columns, "Rarity")),
		OracleText:      field(rec, columns, "Oracle Text"),
		PriceUSD:        price,
		ImageURL:        strings.TrimSpace(field(rec, columns, "Image URL")),
		Colors:          colors,
	})
}

func field(rec []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(rec) {
		return ""
	}

	return rec[i]
}

// parseBool accepts true/1/yes in any casing, everything else is false.
// Unknown tokens are not rejected on purpose.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func optionalFloat(s, fieldName string, rowNum int) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, newRowErr(rowNum, "invalid %s %q", fieldName, s)
	}

	return &v, nil
}

func parseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}

	return tags
}

// PrintCSVWriter renders a stack as a print collection CSV. Rows with
// identical visible data collapse into one row with a summed count, rows
// differing in any emitted column stay apart.
type PrintCSVWriter struct{}

func (PrintCSVWriter) Write(s *stacks.Stack, w io.Writer) error {
	if s.Len() == 0 {
		return &cards.ValidationError{Field: "stack", Message: "must not be empty"}
	}

	type group struct {
		print cards.Print
		count int
	}
	var order []string
	groups := map[string]*group{}
	for _, c := range s.Cards() {
		p := cards.ToPrint(c)
		key := printRowKey(p)
		g, ok := groups[key]
		if !ok {
			g = &group{print: p}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Count", "Card Name", "Set Name", "Collector Number", "Foil", "Price"}); err != nil {
		return fmt.Errorf("failed to write csv header %w", err)
	}
	for _, key := range order {
		g := groups[key]
		price := formatPrice(g.print.Price())
		rec := []string{
			strconv.Itoa(g.count),
			g.print.Name(),
			g.print.Set(),
			g.print.CollectorNumber(),
			strconv.FormatBool(g.print.Foil()),
			price,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv record %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func printRowKey(p cards.Print) string {
	price := formatPrice(p.Price())

	return strings.Join([]string{
		p.Name(), p.Set(), p.CollectorNumber(),
		strconv.FormatBool(p.Foil()), price,
	}, "\x1f")
}

// CatalogCSVWriter renders a stack of catalog enriched cards as CSV.
type CatalogCSVWriter struct{}

func (CatalogCSVWriter) Write(s *stacks.Stack, w io.Writer) error {
	if s.Len() == 0 {
		return &cards.ValidationError{Field: "stack", Message: "must not be empty"}
	}

	type group struct {
		card  cards.CatalogCard
		count int
	}
	var order []string
	groups := map[string]*group{}
	for _, c := range s.Cards() {
		cc := asCatalogCard(c)
		key := catalogRowKey(cc)
		g, ok := groups[key]
		if !ok {
			g = &group{card: cc}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
	}

	cw := csv.NewWriter(w)
	header := []string{
		"Count", "Card Name", "Set Code", "Collector Number", "Mana Cost",
		"Type Line", "Rarity", "Oracle Text", "Price USD", "Colors",
		"Oracle ID", "Image URL",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header %w", err)
	}
	for _, key := range order {
		g := groups[key]
		price := formatPrice(g.card.PriceUSD())
		rec := []string{
			strconv.Itoa(g.count),
			g.card.Name(),
			g.card.SetCode(),
			g.card.CollectorNumber(),
			g.card.ManaCost(),
			g.card.TypeLine(),
			g.card.Rarity(),
			g.card.OracleText(),
			price,
			cards.ColorsString(g.card.Colors()),
			g.card.OracleID(),
			g.card.ImageURL(),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write csv record %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func catalogRowKey(c cards.CatalogCard) string {
	price := formatPrice(c.PriceUSD())

	return strings.Join([]string{
		c.Name(), c.SetCode(), c.CollectorNumber(), c.ManaCost(),
		c.TypeLine(), c.Rarity(), c.OracleText(), price,
		cards.ColorsString(c.Colors()), c.OracleID(), c.ImageURL(),
	}, "\x1f")
}

func asCatalogCard(c cards.Card) cards.CatalogCard {
	if cc, ok := c.(cards.CatalogCard); ok {
		return cc
	}

	cc, _ := cards.NewCatalogCard(cards.CatalogCardSpec{Name: c.Name()})

	return cc
}

func formatPrice(v float64, ok bool) string {
	if !ok {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
