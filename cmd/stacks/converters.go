package main

import (
	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
)

// normalizeForOutput prepares a stack for the requested output format.
// The print CSV format needs uniform print rows, the deck format takes
// any card variant as is.
func normalizeForOutput(s *stacks.Stack, format string) *stacks.Stack {
	if format != "csv" {
		return s
	}

	result := stacks.New()
	for _, c := range s.Cards() {
		result.Add(cards.ToPrint(c))
	}

	return result
}
