package parsing

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
)

// cardLine requires pure digits for the count, a fractional count is a
// format error, not a numeric one.
var cardLine = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// ArenaReader parses the line based deck format:
//
//	Deck
//	4 Lightning Bolt
//	2 Counterspell
//
//	Sideboard
//
// Section markers are pure separators, sideboard cards are not kept apart
// from the mainboard.
type ArenaReader struct{}

func (ArenaReader) Read(r io.Reader) (*stacks.Stack, error) {
	stack := stacks.New()

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "Deck" || line == "Sideboard" {
			continue
		}

		m := cardLine.FindStringSubmatch(line)
		if m == nil {
			return nil, newLineErr(lineNum, "invalid card line %q", line)
		}

		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, newLineErr(lineNum, "invalid count %q", m[1])
		}
		if count <= 0 {
			return nil, newLineErr(lineNum, "count must be positive, got %d", count)
		}

		card, err := cards.NewCard(strings.TrimSpace(m[2]))
		if err != nil {
			return nil, newLineErr(lineNum, "invalid card name %q", m[2])
		}

		for n := 0; n < count; n++ {
			stack.Add(card)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck content %w", err)
	}

	return stack, nil
}

// ArenaWriter renders a stack in the line based deck format. Cards are
// grouped by name and sorted in codepoint order, the sideboard section is
// always empty. An empty stack yields "Deck\n\nSideboard\n".
type ArenaWriter struct{}

func (ArenaWriter) Write(s *stacks.Stack, w io.Writer) error {
	counts := map[string]int{}
	names := make([]string, 0, len(counts))
	for _, c := range s.Cards() {
		if _, ok := counts[c.Name()]; !ok {
			names = append(names, c.Name())
		}
		counts[c.Name()]++
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Deck\n")
	for _, name := range names {
		fmt.Fprintf(&b, "%d %s\n", counts[name], name)
	}
	b.WriteString("\nSideboard\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write deck content %w", err)
	}

	return nil
}
