package mallet

import (
	"reflect"
	"strings"

	"github.com/AlekSi/pointer"
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// FieldUsage describes one field for the usage summary: its canonical
// long form, its short alias if one is configured, and whether it is
// optional.
type FieldUsage struct {
	Canonical string
	Alias     *rune
	Optional  bool
}

// UsageDecoder implements the same traversal contract as FlagDecoder
// but never looks at tokens: each field visit records a FieldUsage
// instead.  One decoder serves one pass.
type UsageDecoder struct {
	config  *FlagConfiguration
	current *FieldUsage
	fields  []FieldUsage
}

var _ Decoder = &UsageDecoder{}

func newUsageDecoder(config *FlagConfiguration) *UsageDecoder {
	if config == nil {
		config = NewFlagConfiguration()
	}
	return &UsageDecoder{config: config}
}

// DescribeFields runs a usage pass over model's type and returns one
// descriptor per field, in declaration order.  The model itself is
// never written; the pass decodes into a scratch instance.
func DescribeFields(model interface{}, config *FlagConfiguration) ([]FieldUsage, error) {
	v, err := modelValue(model)
	if err != nil {
		return nil, err
	}
	t := v.Type()
	u := newUsageDecoder(config)
	scratch := reflect.New(t).Elem()
	err = decodeStruct(u, t, scratch)
	if err != nil {
		return nil, err
	}
	return u.fields, nil
}

// Usage renders the usage summary for model's type.  The description,
// if one was configured, is separately available from
// config.Description().
func Usage(model interface{}, config *FlagConfiguration, forceIndent bool) (string, error) {
	fields, err := DescribeFields(model, config)
	if err != nil {
		return "", err
	}
	return FormatUsage(fields, forceIndent), nil
}

func (u *UsageDecoder) optional() error {
	if u.current == nil {
		return commonerrors.LibraryError(errors.New("internal error: no current field"))
	}
	u.current.Optional = true
	return nil
}

func (u *UsageDecoder) finish() error {
	if u.current == nil {
		return commonerrors.LibraryError(errors.New("internal error: no current field"))
	}
	u.fields = append(u.fields, *u.current)
	u.current = nil
	return nil
}

// Bool records a presence flag.  Booleans default to false, so they
// always render as optional.
func (u *UsageDecoder) Bool() (bool, error) {
	if err := u.optional(); err != nil {
		return false, err
	}
	return false, u.finish()
}

func (u *UsageDecoder) String() (string, error) {
	return "", u.finish()
}

func (u *UsageDecoder) Int() (int64, error) {
	return 0, u.finish()
}

func (u *UsageDecoder) Uint() (uint64, error) {
	return 0, u.finish()
}

func (u *UsageDecoder) Float() (float64, error) {
	return 0, u.finish()
}

func (u *UsageDecoder) Char() (rune, error) {
	return 0, u.finish()
}

func (u *UsageDecoder) Option(f func(d Decoder, present bool) error) error {
	if err := u.optional(); err != nil {
		return err
	}
	return f(u, true)
}

// Seq reports zero elements: a usage pass has no tokens to count.
func (u *UsageDecoder) Seq(f func(d Decoder, length int) error) error {
	return f(u, 0)
}

func (u *UsageDecoder) SeqElem(index int, f func(d Decoder) error) error {
	return commonerrors.LibraryError(errors.New("internal error: usage pass visited a sequence element"))
}

func (u *UsageDecoder) Struct(f func(d Decoder) error) error {
	return f(u)
}

// StructField starts a descriptor for the field.  The rest field has
// no fixed usage text of its own, so its visit is redirected into a
// fresh decoder with an empty configuration; the pending descriptor
// is dropped when that decoder is discarded.
func (u *UsageDecoder) StructField(name string, index int, f func(d Decoder) error) error {
	field := FieldUsage{Canonical: canonicalFieldName(name)}
	if alias, ok := u.config.ShortFor(name); ok {
		field.Alias = pointer.To(alias)
	}
	u.current = &field
	if u.config.isRestField(name) {
		return f(newUsageDecoder(nil))
	}
	return f(u)
}

// FormatUsage renders descriptors into usage text: the mandatory
// block, then the optional block, declaration order preserved within
// each.  Optional entries are wrapped in brackets.  When any field
// has an alias (or forceIndent is set), non-aliased lines are
// indented to line up with the "-x, " prefixes.
func FormatUsage(fields []FieldUsage, forceIndent bool) string {
	var shorthands bool
	for _, f := range fields {
		if f.Alias != nil {
			shorthands = true
			break
		}
	}
	var indent string
	if forceIndent || shorthands {
		indent = "    "
	}

	var mandatory, optional []FieldUsage
	for _, f := range fields {
		if f.Optional {
			optional = append(optional, f)
		} else {
			mandatory = append(mandatory, f)
		}
	}

	var out strings.Builder
	printFields(&out, mandatory, indent, func(s string) string { return s })
	printFields(&out, optional, indent, func(s string) string { return "[" + s + "]" })
	return out.String()
}

func printFields(out *strings.Builder, fields []FieldUsage, indent string, format func(string) string) {
	for _, f := range fields {
		if f.Alias != nil {
			out.WriteString("-" + string(*f.Alias) + ", ")
		} else {
			out.WriteString(indent)
		}
		out.WriteString(format(f.Canonical))
		out.WriteString("\n")
	}
}
