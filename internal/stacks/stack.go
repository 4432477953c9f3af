// Package stacks provides the multiset container that groups card copies
// by their identity and the algebra on top of it.
package stacks

import (
	"fmt"
	"strings"

	"github.com/konstantinfoerster/card-stacks-go/internal/cards"
)

// Stack is a multiset of cards. Copies are grouped into buckets keyed by
// the card identity, buckets keep their first-insertion order and so do
// the copies inside a bucket. All algebra operations return a new Stack
// and leave the operands untouched.
type Stack struct {
	order   []string
	buckets map[string]*bucket
}

type bucket struct {
	key    cards.Card
	copies []cards.Card
}

func New() *Stack {
	return &Stack{
		buckets: map[string]*bucket{},
	}
}

// From builds a stack from the given cards in order.
func From(cc ...cards.Card) *Stack {
	s := New()
	for _, c := range cc {
		s.Add(c)
	}

	return s
}

// Add appends the card to the bucket of its identity, creating the bucket
// if needed.
func (s *Stack) Add(c cards.Card) {
	key := c.Identity()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{key: c}
		s.buckets[key] = b
		s.order = append(s.order, key)
	}
	b.copies = append(b.copies, c)
}

// Count returns the number of copies bucketed under the identity of the
// given card.
func (s *Stack) Count(c cards.Card) int {
	if b, ok := s.buckets[c.Identity()]; ok {
		return len(b.copies)
	}

	return 0
}

// Contains reports whether any bucket key equals the given card under
// value equality. A plain identity lookup is not enough here, different
// variants of the same logical card live in different buckets but still
// compare equal.
func (s *Stack) Contains(c cards.Card) bool {
	for _, key := range s.order {
		if s.buckets[key].key.Equal(c) {
			return true
		}
	}

	return false
}

// Match collects every copy from every bucket whose key equals the query.
// More than one bucket can match when the equality rules of the query are
// loose, e.g. a print with an unknown condition.
func (s *Stack) Match(query cards.Card) *Stack {
	result := New()
	for _, key := range s.order {
		b := s.buckets[key]
		if !query.Equal(b.key) {
			continue
		}
		for _, c := range b.copies {
			result.Add(c)
		}
	}

	return result
}

// UniqueCards returns one representative per bucket in first-insertion
// order.
func (s *Stack) UniqueCards() []cards.Card {
	unique := make([]cards.Card, 0, len(s.order))
	for _, key := range s.order {
		unique = append(unique, s.buckets[key].key)
	}

	return unique
}

type Entry struct {
	Card  cards.Card
	Count int
}

// Items returns one (card, count) pair per bucket in first-insertion
// order.
func (s *Stack) Items() []Entry {
	items := make([]Entry, 0, len(s.order))
	for _, key := range s.order {
		b := s.buckets[key]
		items = append(items, Entry{Card: b.key, Count: len(b.copies)})
	}

	return items
}

// Cards returns every copy, bucket by bucket in insertion order.
func (s *Stack) Cards() []cards.Card {
	all := make([]cards.Card, 0, s.Len())
	for _, key := range s.order {
		all = append(all, s.buckets[key].copies...)
	}

	return all
}

// Len returns the total number of copies.
func (s *Stack) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b.copies)
	}

	return n
}

// Intersect keeps min(count, other count) copies per bucket present in
// both stacks. The surviving copies are drawn from the receiver.
func (s *Stack) Intersect(other *Stack) *Stack {
	result := New()
	for _, key := range s.order {
		ob, ok := other.buckets[key]
		if !ok {
			continue
		}
		b := s.buckets[key]
		n := min(len(b.copies), len(ob.copies))
		for _, c := range b.copies[:n] {
			result.Add(c)
		}
	}

	return result
}

// Difference keeps max(0, count - other count) copies per bucket of the
// receiver.
func (s *Stack) Difference(other *Stack) *Stack {
	result := New()
	for _, key := range s.order {
		b := s.buckets[key]
		n := len(b.copies) - other.countKey(key)
		if n <= 0 {
			continue
		}
		for _, c := range b.copies[:n] {
			result.Add(c)
		}
	}

	return result
}

// Union returns a copy of the receiver with every copy of other appended.
// Multiplicities add up, this is a multiset sum and not a set union.
func (s *Stack) Union(other *Stack) *Stack {
	result := New()
	for _, c := range s.Cards() {
		result.Add(c)
	}
	for _, c := range other.Cards() {
		result.Add(c)
	}

	return result
}

// AddTag returns a new stack in which every copy carries the given tag.
// Tags are not part of the identity, the bucket layout stays the same.
func (s *Stack) AddTag(tag string) *Stack {
	result := New()
	for _, c := range s.Cards() {
		result.Add(c.WithTag(tag))
	}

	return result
}

func (s *Stack) countKey(key string) int {
	if b, ok := s.buckets[key]; ok {
		return len(b.copies)
	}

	return 0
}

func (s *Stack) String() string {
	if len(s.order) == 0 {
		return "Stack(empty)"
	}

	var b strings.Builder
	b.WriteString("Stack(")
	for i, e := range s.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%dx %s", e.Count, e.Card.Name())
	}
	b.WriteString(")")

	return b.String()
}
