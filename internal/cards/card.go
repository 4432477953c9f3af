package cards

import (
	"fmt"
	"slices"
	"strings"
)

// Card is implemented by every card variant. The identity key determines
// how copies are grouped inside a stack, equality determines how cards are
// matched across variants. The two are deliberately not the same thing: a
// Print and a CatalogCard with the same display name live in separate
// buckets but still find each other via Equal.
type Card interface {
	Name() string
	Slug() string
	// Identity returns the canonical grouping key of the card. It is a pure
	// function of the immutable card fields, tags and source are excluded.
	Identity() string
	Tags() []string
	Source() string
	Equal(other Card) bool
	// WithTag returns a copy with the tag appended. Adding an already
	// present tag is a no-op.
	WithTag(tag string) Card
	// WithSource returns a copy with the provenance path set.
	WithSource(source string) Card
	// Property exposes a named field to the filter engine. The second
	// return value reports whether the variant has such a property at all,
	// an unset optional field is reported as present with a nil value.
	Property(name string) (any, bool)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s' %s", e.Field, e.Message)
}

// Basic is a card that is identified by its display name only. Two basic
// cards are equal iff their slugs match.
type Basic struct {
	name   string
	slug   string
	tags   []string
	source string
}

func NewCard(name string) (Basic, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Basic{}, &ValidationError{Field: "name", Message: "must not be empty"}
	}

	return Basic{
		name: trimmed,
		slug: Slugify(trimmed),
	}, nil
}

// MustNewCard is a test and fixture convenience, it panics on an invalid
// name.
func MustNewCard(name string) Basic {
	c, err := NewCard(name)
	if err != nil {
		panic(err)
	}

	return c
}

func (c Basic) Name() string {
	return c.name
}

func (c Basic) Slug() string {
	return c.slug
}

func (c Basic) Identity() string {
	return c.slug
}

func (c Basic) Tags() []string {
	return c.tags
}

func (c Basic) Source() string {
	return c.source
}

func (c Basic) Equal(other Card) bool {
	if other == nil {
		return false
	}

	return c.slug == other.Slug()
}

func (c Basic) WithTag(tag string) Card {
	c.tags = appendTag(c.tags, tag)

	return c
}

func (c Basic) WithSource(source string) Card {
	c.source = source

	return c
}

func (c Basic) Property(name string) (any, bool) {
	switch name {
	case "name":
		return c.name, true
	case "slug":
		return c.slug, true
	case "tags":
		return c.tags, true
	case "source":
		return nilIfEmpty(c.source), true
	default:
		return nil, false
	}
}

func (c Basic) String() string {
	return c.name
}

func appendTag(tags []string, tag string) []string {
	if slices.Contains(tags, tag) {
		return tags
	}

	next := make([]string, 0, len(tags)+1)
	next = append(next, tags...)

	return append(next, tag)
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}

	return s
}
