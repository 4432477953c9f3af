package scryfall

import (
	"context"
	"errors"
	"fmt"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultEnrichLimit = 4

// Enricher augments cards with catalog reference data looked up by exact
// name.
type Enricher struct {
	client *Client
	limit  int
}

func NewEnricher(client *Client) *Enricher {
	return &Enricher{
		client: client,
		limit:  defaultEnrichLimit,
	}
}

// WithLimit sets the number of in-flight catalog lookups used by
// EnrichStack.
func (e *Enricher) WithLimit(limit int) *Enricher {
	if limit > 0 {
		e.limit = limit
	}

	return e
}

// Enrich looks up one card. It returns nil, nil when the catalog does not
// know the name so that callers can skip it, any other failure
// propagates.
func (e *Enricher) Enrich(ctx context.Context, c cards.Card, setCode string) (*cards.CatalogCard, error) {
	data, err := e.client.CardByName(ctx, c.Name(), setCode)
	if err != nil {
		if errors.Is(err, ErrCardNotFound) {
			log.Debug().Str("card", c.Name()).Msg("card not found in catalog, skipping")

			return nil, nil
		}

		return nil, err
	}

	price, err := data.Prices.USDValue()
	if err != nil {
		return nil, fmt.Errorf("failed to enrich card %q due to %w", c.Name(), err)
	}

	var colors []cards.Color
	for _, raw := range data.Colors {
		color, err := cards.ParseColor(raw)
		if err != nil {
			colors = nil

			break
		}
		colors = append(colors, color)
	}

	enriched, err := cards.NewCatalogCard(cards.CatalogCardSpec{
		Name:            data.Name,
		OracleID:        data.OracleID,
		SetCode:         data.Set,
		CollectorNumber: data.CollectorNumber,
		ManaCost:        data.ManaCost,
		TypeLine:        data.TypeLine,
		Rarity:          data.Rarity,
		OracleText:      data.OracleText,
		PriceUSD:        price,
		ImageURL:        data.ImageUris.Normal,
		Colors:          colors,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog returned an invalid card for %q due to %w", c.Name(), err)
	}

	return &enriched, nil
}

// EnrichStack enriches every unique card of the stack, preserving
// multiplicities. Cards the catalog does not know are dropped. Lookups
// run with bounded parallelism, one request per unique card.
func (e *Enricher) EnrichStack(ctx context.Context, s *stacks.Stack, setCode string) (*stacks.Stack, error) {
	items := s.Items()
	enriched := make([]*cards.CatalogCard, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			ec, err := e.Enrich(ctx, item.Card, setCode)
			if err != nil {
				return err
			}
			enriched[i] = ec

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := stacks.New()
	for i, item := range items {
		if enriched[i] == nil {
			continue
		}
		for n := 0; n < item.Count; n++ {
			result.Add(*enriched[i])
		}
	}

	return result, nil
}
