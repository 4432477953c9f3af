// Package scryfall talks to a Scryfall style card catalog and enriches
// stacks with the returned reference data.
package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/aio"
	"github.com/konstantinfoerster/card-stacks-go/internal/config"
	"github.com/konstantinfoerster/card-stacks-go/internal/web"
)

// ErrCardNotFound marks a name the catalog does not know. Callers treat
// this as a normal skip outcome, not a failure.
var ErrCardNotFound = errors.New("card not found")

// Card is the subset of the catalog response the enricher consumes.
type Card struct {
	Name            string   `json:"name"`
	OracleID        string   `json:"oracle_id"`
	Set             string   `json:"set"`
	CollectorNumber string   `json:"collector_number"`
	ManaCost        string   `json:"mana_cost"`
	TypeLine        string   `json:"type_line"`
	Rarity          string   `json:"rarity"`
	OracleText      string   `json:"oracle_text"`
	Colors          []string `json:"colors"`
	Prices          Prices   `json:"prices"`
	ImageUris       ImgUris  `json:"image_uris"`
}

type Prices struct {
	USD string `json:"usd"`
}

func (p Prices) USDValue() (*float64, error) {
	if strings.TrimSpace(p.USD) == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(p.USD, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid usd price %q %w", p.USD, err)
	}

	return &v, nil
}

type ImgUris struct {
	Normal string `json:"normal"`
}

func NewClient(cfg config.Scryfall, wclient web.Client) *Client {
	return &Client{
		cfg:     cfg,
		wclient: wclient,
	}
}

type Client struct {
	cfg     config.Scryfall
	wclient web.Client
}

// CardByName fetches catalog data by exact card name and optional set
// code. A missing card is reported via ErrCardNotFound.
func (c *Client) CardByName(ctx context.Context, name, setCode string) (*Card, error) {
	target, err := c.cfg.EnsureBaseURL("cards/named")
	if err != nil {
		return nil, fmt.Errorf("failed to build card lookup url due to %w", err)
	}

	params := url.Values{}
	params.Set("exact", name)
	if setCode != "" {
		params.Set("set", strings.ToLower(setCode))
	}
	target += "?" + params.Encode()

	opts := web.NewGetOpts().
		WithHeader(web.HeaderAccept, web.MimeTypeJSON).
		WithExpectedCodes(http.StatusOK)
	resp, err := c.wclient.Get(ctx, target, opts)
	if err != nil {
		if web.IsStatusCode(err, http.StatusNotFound) {
			err = errors.Join(err, ErrCardNotFound)
		}

		return nil, fmt.Errorf("failed to find card %q due to %w", name, err)
	}
	defer aio.Close(resp.Body)

	var sc Card
	if err := json.NewDecoder(resp.Body).Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall card due to %w", err)
	}

	return &sc, nil
}
