package cards

// ToPrint converts any card variant into a Print so that stacks of mixed
// variants can be written through the print CSV writer. A CatalogCard
// carries its set code and USD price over, a Basic card becomes a print
// with defaults.
func ToPrint(c Card) Print {
	switch v := c.(type) {
	case Print:
		return v
	case CatalogCard:
		p, _ := NewPrint(PrintSpec{
			Name:            v.Name(),
			Set:             v.SetCode(),
			CollectorNumber: v.CollectorNumber(),
			Price:           v.priceUSD,
		})
		p.base.tags = v.base.tags
		p.base.source = v.base.source

		return p
	default:
		p, _ := NewPrint(PrintSpec{Name: c.Name()})
		for _, t := range c.Tags() {
			p.base.tags = appendTag(p.base.tags, t)
		}
		p.base.source = c.Source()

		return p
	}
}
