package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/konstantinfoerster/card-stacks-go/internal/parsing"
	"github.com/konstantinfoerster/card-stacks-go/internal/scryfall"
	"github.com/konstantinfoerster/card-stacks-go/internal/stats"
	"github.com/konstantinfoerster/card-stacks-go/internal/timer"
	"github.com/konstantinfoerster/card-stacks-go/internal/web"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var enrichSetCode string
var enrichLimit int

var enrichCmd = &cobra.Command{
	Use:   "enrich INPUT OUTPUT",
	Short: "Enrich cards with catalog data and write them as catalog CSV",
	Long: `Enrich loads a stack, looks up every unique card by exact name in the
card catalog and writes the enriched results as catalog CSV. Cards the
catalog does not know are skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEnrich(cmd, args[0], args[1])
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichSetCode, "set", "", "set code to narrow the lookup for all cards")
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 4, "number of parallel catalog lookups")
}

func runEnrich(cmd *cobra.Command, input, output string) (err error) {
	defer timer.TimeTrack(time.Now(), "enrich")

	registry := parsing.NewDefaultRegistry()
	stack, err := registry.LoadStack(input)
	if err != nil {
		return err
	}

	wclient := web.NewClient(&http.Client{Timeout: cfg.HTTP.TimeoutOrDefault()})
	client := scryfall.NewClient(cfg.Scryfall, wclient)
	enricher := scryfall.NewEnricher(client).WithLimit(enrichLimit)

	log.Info().Int("cards", stack.Len()).Str("set", enrichSetCode).Msg("enriching stack")
	enriched, err := enricher.EnrichStack(cmd.Context(), stack, enrichSetCode)
	if err != nil {
		return fmt.Errorf("enrichment failed %w", err)
	}

	f, err := os.Create(filepath.Clean(output))
	if err != nil {
		return fmt.Errorf("failed to create file %s %w", output, err)
	}
	defer func(toClose *os.File) {
		cErr := toClose.Close()
		if cErr != nil {
			// report close errors
			if err == nil {
				err = cErr
			} else {
				err = errors.Wrap(err, cErr.Error())
			}
		}
	}(f)

	if err = (parsing.CatalogCSVWriter{}).Write(enriched, f); err != nil {
		return fmt.Errorf("failed to write enriched stack %w", err)
	}

	skipped := stack.Len() - enriched.Len()
	log.Info().
		Int("original", stack.Len()).
		Int("enriched", enriched.Len()).
		Int("skipped", skipped).
		Msg("enrichment completed")
	stats.LogMemUsage()

	return err
}
