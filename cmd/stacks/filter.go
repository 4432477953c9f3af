package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/filtering"
	"github.com/konstantinfoerster/card-stacks-go/internal/parsing"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var filterWhere []string

var filterCmd = &cobra.Command{
	Use:   "filter INPUT OUTPUT",
	Short: "Keep only cards matching the given property filters",
	Long: `Filter loads a stack and keeps only cards passing every --where
predicate. A predicate has the form PROPERTY:OPERATOR:VALUE, e.g.
"set:eq:Beta", "price:lt:10" or "rarity:in:rare,mythic".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(args[0], args[1])
	},
}

func init() {
	filterCmd.Flags().StringArrayVar(&filterWhere, "where", nil, "filter predicate PROPERTY:OPERATOR:VALUE, repeatable")
}

func runFilter(input, output string) error {
	filters := make([]filtering.PropertyFilter, 0, len(filterWhere))
	for _, raw := range filterWhere {
		f, err := parseFilter(raw)
		if err != nil {
			return err
		}
		filters = append(filters, f)
	}

	registry := parsing.NewDefaultRegistry()
	stack, err := registry.LoadStack(input)
	if err != nil {
		return err
	}

	result := filtering.Filter(stack, filters...)
	log.Info().Int("before", stack.Len()).Int("after", result.Len()).Msg("filtered stack")

	result = normalizeForOutput(result, parsing.FormatKey(output))

	return registry.WriteStack(result, output)
}

func parseFilter(raw string) (filtering.PropertyFilter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 || parts[0] == "" {
		return filtering.PropertyFilter{}, fmt.Errorf("invalid filter %q, expected PROPERTY:OPERATOR:VALUE", raw)
	}

	op, err := filtering.ParseOperator(parts[1])
	if err != nil {
		return filtering.PropertyFilter{}, err
	}

	return filtering.PropertyFilter{
		Property: parts[0],
		Operator: op,
		Value:    parseFilterValue(op, parts[2]),
	}, nil
}

// parseFilterValue types the raw value: numbers and booleans are
// converted, list operators get their value split on commas, everything
// else stays a string.
func parseFilterValue(op filtering.Operator, raw string) any {
	if op == filtering.OpIn || op == filtering.OpNotIn {
		var values []any
		for _, part := range strings.Split(raw, ",") {
			values = append(values, parseScalar(strings.TrimSpace(part)))
		}

		return values
	}

	return parseScalar(raw)
}

func parseScalar(raw string) any {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}

	return raw
}
