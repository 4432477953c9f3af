package parsing_test

import (
	"strings"
	"testing"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/parsing"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVReadBasicCards(t *testing.T) {
	content := "Count,Card Name\n4,Lightning Bolt\n2,Counterspell\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, 6, stack.Len())
	assert.Equal(t, 4, stack.Count(cards.MustNewCard("Lightning Bolt")))

	for _, c := range stack.Cards() {
		_, ok := c.(cards.Basic)
		assert.True(t, ok, "expected a basic card, got %T", c)
	}
}

func TestCSVReadPrints(t *testing.T) {
	content := "Count,Card Name,Set Name,Foil,Price\n" +
		"2,Lightning Bolt,Beta,true,149.99\n" +
		"1,Lightning Bolt,Beta,false,\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, 3, stack.Len())
	assert.Len(t, stack.UniqueCards(), 2)

	foil, ok := stack.Cards()[0].(cards.Print)
	require.True(t, ok, "expected a print, got %T", stack.Cards()[0])
	assert.Equal(t, "Beta", foil.Set())
	assert.True(t, foil.Foil())
	price, hasPrice := foil.Price()
	require.True(t, hasPrice)
	assert.InDelta(t, 149.99, price, 0.001)
}

func TestCSVReadCatalogCards(t *testing.T) {
	content := "Count,Card Name,Set Code,Mana Cost,Type Line,Rarity,Colors,Oracle ID\n" +
		"1,Lightning Bolt,LEB,{R},Instant,common,R,abc-123\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	cc, ok := stack.Cards()[0].(cards.CatalogCard)
	require.True(t, ok, "expected a catalog card, got %T", stack.Cards()[0])
	assert.Equal(t, "LEB", cc.SetCode())
	assert.Equal(t, "{R}", cc.ManaCost())
	assert.Equal(t, "abc-123", cc.OracleID())
	assert.Equal(t, []cards.Color{"R"}, cc.Colors())
}

func TestCSVShapeDetection(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   any
	}{
		{
			name:   "count and name only is basic",
			header: "Count,Card Name",
			want:   cards.Basic{},
		},
		{
			name:   "single print column is print",
			header: "Count,Card Name,Foil",
			want:   cards.Print{},
		},
		{
			name:   "two catalog columns with price fall back to print",
			header: "Count,Card Name,Set Code,Rarity,Price",
			want:   cards.Print{},
		},
		{
			name:   "three catalog columns win over print columns",
			header: "Count,Card Name,Set Code,Rarity,Type Line,Price",
			want:   cards.CatalogCard{},
		},
		{
			name:   "unknown extra columns are ignored",
			header: "Count,Card Name,Owner,Binder",
			want:   cards.Basic{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := tc.header + "\n1,Lightning Bolt\n"

			stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

			require.NoError(t, err)
			require.Equal(t, 1, stack.Len())
			assert.IsType(t, tc.want, stack.Cards()[0])
		})
	}
}

func TestCSVReadTags(t *testing.T) {
	content := "Count,Card Name,Tags\n1,Lightning Bolt,\"burn, staple\"\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, []string{"burn", "staple"}, stack.Cards()[0].Tags())
}

func TestCSVReadQuotedFields(t *testing.T) {
	content := "Count,Card Name\n2,\"Borrowing 100,000 Arrows\"\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, "Borrowing 100,000 Arrows", stack.Cards()[0].Name())
}

func TestCSVReadFails(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty content",
			content: "",
			wantErr: "csv content has no header",
		},
		{
			name:    "missing card name column",
			content: "Count,Name\n1,Lightning Bolt\n",
			wantErr: "missing required columns",
		},
		{
			name:    "missing count column",
			content: "Card Name\nLightning Bolt\n",
			wantErr: "missing required columns",
		},
		{
			name:    "non numeric count",
			content: "Count,Card Name\nfour,Lightning Bolt\n",
			wantErr: "invalid count \"four\" at row 2",
		},
		{
			name:    "zero count",
			content: "Count,Card Name\n1,Lightning Bolt\n0,Counterspell\n",
			wantErr: "count must be positive, got 0 at row 3",
		},
		{
			name:    "empty card name",
			content: "Count,Card Name\n1,\n",
			wantErr: "card name must not be empty at row 2",
		},
		{
			name:    "invalid price",
			content: "Count,Card Name,Price\n1,Lightning Bolt,cheap\n",
			wantErr: "invalid price \"cheap\" at row 2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsing.CSVReader{}.Read(strings.NewReader(tc.content))

			var fErr *parsing.FormatError
			require.ErrorAs(t, err, &fErr)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCSVParseFoilValues(t *testing.T) {
	content := "Count,Card Name,Foil\n" +
		"1,Lightning Bolt,true\n" +
		"1,Counterspell,Yes\n" +
		"1,Black Lotus,1\n" +
		"1,Giant Growth,no\n" +
		"1,Shock,\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))

	require.NoError(t, err)
	foils := 0
	for _, c := range stack.Cards() {
		if p, ok := c.(cards.Print); ok && p.Foil() {
			foils++
		}
	}
	assert.Equal(t, 3, foils)
}

func TestPrintCSVWriteGroupsIdenticalRows(t *testing.T) {
	bolt, err := cards.NewPrint(cards.PrintSpec{Name: "Lightning Bolt", Set: "Beta"})
	require.NoError(t, err)
	foilBolt, err := cards.NewPrint(cards.PrintSpec{Name: "Lightning Bolt", Set: "Beta", Foil: true})
	require.NoError(t, err)

	stack := stacks.From(bolt, foilBolt, bolt)

	var sb strings.Builder
	require.NoError(t, parsing.PrintCSVWriter{}.Write(stack, &sb))

	want := "Count,Card Name,Set Name,Collector Number,Foil,Price\n" +
		"2,Lightning Bolt,Beta,,false,\n" +
		"1,Lightning Bolt,Beta,,true,\n"
	assert.Equal(t, want, sb.String())
}

func TestPrintCSVWriteConvertsBasicCards(t *testing.T) {
	stack := stacks.From(cards.MustNewCard("Lightning Bolt"))

	var sb strings.Builder
	require.NoError(t, parsing.PrintCSVWriter{}.Write(stack, &sb))

	assert.Contains(t, sb.String(), "1,Lightning Bolt,,,false,\n")
}

func TestPrintCSVWriteEmptyStackFails(t *testing.T) {
	var sb strings.Builder
	err := parsing.PrintCSVWriter{}.Write(stacks.New(), &sb)

	var vErr *cards.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, sb.String())
}

func TestCatalogCSVWriteEmptyStackFails(t *testing.T) {
	var sb strings.Builder
	err := parsing.CatalogCSVWriter{}.Write(stacks.New(), &sb)

	var vErr *cards.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCatalogCSVRoundTrip(t *testing.T) {
	card, err := cards.NewCatalogCard(cards.CatalogCardSpec{
		Name:      "Lightning Bolt",
		OracleID:  "abc-123",
		SetCode:   "LEB",
		ManaCost:  "{R}",
		TypeLine:  "Instant",
		Rarity:    "common",
		PriceUSD:  floatPtr(1.5),
		Colors:    []cards.Color{"R"},
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, parsing.CatalogCSVWriter{}.Write(stacks.From(card, card), &sb))

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Equal(t, 2, stack.Len())
	got, ok := stack.Cards()[0].(cards.CatalogCard)
	require.True(t, ok)
	assert.Equal(t, "abc-123", got.OracleID())
	assert.Equal(t, "{R}", got.ManaCost())
	price, hasPrice := got.PriceUSD()
	require.True(t, hasPrice)
	assert.InDelta(t, 1.5, price, 0.001)
}

func TestPrintCSVRoundTrip(t *testing.T) {
	content := "Count,Card Name,Set Name,Collector Number,Foil,Price\n" +
		"3,Lightning Bolt,Beta,161,true,42.5\n"

	stack, err := parsing.CSVReader{}.Read(strings.NewReader(content))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, parsing.PrintCSVWriter{}.Write(stack, &sb))

	assert.Equal(t, content, sb.String())
}

func floatPtr(f float64) *float64 {
	return &f
}
