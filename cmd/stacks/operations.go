package main

import (
	"fmt"
	"time"

	"github.com/konstantinfoerster/card-stacks-go/internal/parsing"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
	"github.com/konstantinfoerster/card-stacks-go/internal/timer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type stackOperation struct {
	name        string
	description string
	apply       func(a, b *stacks.Stack) *stacks.Stack
}

var operations = []stackOperation{
	{
		name:        "union",
		description: "Combine all cards from both stacks, multiplicities add up",
		apply:       func(a, b *stacks.Stack) *stacks.Stack { return a.Union(b) },
	},
	{
		name:        "intersection",
		description: "Keep cards that exist in both stacks with their minimum count",
		apply:       func(a, b *stacks.Stack) *stacks.Stack { return a.Intersect(b) },
	},
	{
		name:        "difference",
		description: "Keep cards of the first stack that the second one does not cover",
		apply:       func(a, b *stacks.Stack) *stacks.Stack { return a.Difference(b) },
	},
}

func newOperationCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(operations))
	for _, op := range operations {
		cmds = append(cmds, &cobra.Command{
			Use:   op.name + " INPUT1 INPUT2 OUTPUT",
			Short: op.description,
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(op, args[0], args[1], args[2])
			},
		})
	}

	return cmds
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List all available stack operations",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available stack operations:")
		cmd.Println()
		for _, op := range operations {
			cmd.Printf("  %-12s - %s\n", op.name, op.description)
		}
	},
}

func runOperation(op stackOperation, input1, input2, output string) error {
	defer timer.TimeTrack(time.Now(), op.name)

	registry := parsing.NewDefaultRegistry()

	// Inputs are fully drained one after the other, never two open files
	// at once.
	first, err := registry.LoadStack(input1)
	if err != nil {
		return err
	}
	second, err := registry.LoadStack(input2)
	if err != nil {
		return err
	}

	result := op.apply(first, second)
	log.Info().
		Int("first", first.Len()).
		Int("second", second.Len()).
		Int("result", result.Len()).
		Msgf("computed %s", op.name)

	result = normalizeForOutput(result, parsing.FormatKey(output))
	if err := registry.WriteStack(result, output); err != nil {
		return fmt.Errorf("failed to write result to %s %w", output, err)
	}

	return nil
}
