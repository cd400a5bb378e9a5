package mallet

import (
	"github.com/AlekSi/pointer"
)

// DefaultRestField is the field name that receives leftover tokens
// when the configuration does not override it with RestField().
const DefaultRestField = "rest"

// FlagConfiguration is the per-struct static metadata consulted during
// a decode or usage pass: short aliases, an optional free-text
// description, and the name of the field that captures leftover
// tokens.  Build one with NewFlagConfiguration() before decoding;
// after that it is read-only and may be shared across any number of
// passes for the same struct type.
type FlagConfiguration struct {
	shortAliases map[string]rune
	description  *string
	restField    string
}

// NewFlagConfiguration returns an empty configuration: no aliases, no
// description, and "rest" as the rest-field name.
func NewFlagConfiguration() *FlagConfiguration {
	return &FlagConfiguration{
		shortAliases: make(map[string]rune),
		restField:    DefaultRestField,
	}
}

// Short registers a single-character alias for a field so that -c is
// interchangeable with the field's --canonical-form.  The field name
// is matched case-insensitively against the struct's field names
// (both are kebab-normalized).  Registering the same field twice
// keeps the last alias.
func (c *FlagConfiguration) Short(field string, alias rune) *FlagConfiguration {
	c.shortAliases[kebabName(field)] = alias
	return c
}

// Desc sets the free-text description reported alongside usage text.
func (c *FlagConfiguration) Desc(text string) *FlagConfiguration {
	c.description = pointer.To(text)
	return c
}

// RestField overrides which field receives the leftover tokens.
func (c *FlagConfiguration) RestField(name string) *FlagConfiguration {
	c.restField = kebabName(name)
	return c
}

// ShortFor reports the alias registered for a field, if any.
func (c *FlagConfiguration) ShortFor(field string) (rune, bool) {
	alias, ok := c.shortAliases[kebabName(field)]
	return alias, ok
}

// Description reports the configured description, if any.
func (c *FlagConfiguration) Description() (string, bool) {
	if c.description == nil {
		return "", false
	}
	return pointer.GetString(c.description), true
}

// Rest reports the kebab-normalized name of the rest field.
func (c *FlagConfiguration) Rest() string {
	return c.restField
}

func (c *FlagConfiguration) isRestField(field string) bool {
	return kebabName(field) == c.restField
}
