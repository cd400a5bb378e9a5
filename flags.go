package mallet

import (
	"strconv"
	"unicode/utf8"

	"github.com/muir/commonerrors"
	"github.com/muir/nject"
	"github.com/pkg/errors"
)

// decodeState tracks which mode a value-decode pass is in: normal
// field-by-field resolution, or emitting elements of the rest field
// from a frozen view of the leftover tokens.
type decodeState int

const (
	processing decodeState = iota
	capturingRest
)

// FlagDecoder walks a struct's fields in declaration order, consuming
// matching tokens from its private copy of the arguments and
// converting operands into field values.  A FlagDecoder is built,
// driven through Decode exactly once, and discarded; it is not safe
// for concurrent use and defines no concurrent entry points.
type FlagDecoder struct {
	source       []string
	config       *FlagConfiguration
	currentField string
	state        decodeState
	restView     []string
	restIndex    int
	done         bool
	onRemaining  func([]string) error
	validator    Validate
	delayedErr   error
}

var _ Decoder = &FlagDecoder{}

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired
type Validate interface {
	Struct(s interface{}) error
	// StructPartial will only be called with a single Field
	StructPartial(s interface{}, fields ...string) error
}

// DecoderOptArg is a functional argument for NewFlagDecoder.
type DecoderOptArg func(*FlagDecoder) error

// OnRemaining is called after a successful decode with the tokens
// that no field claimed.  The callback is an injection chain; the
// final function can receive the leftover []string.
func OnRemaining(chain ...interface{}) DecoderOptArg {
	return func(d *FlagDecoder) error {
		return nject.Sequence("default-error-responder",
			nject.Provide("default-error", func() nject.TerminalError {
				return nil
			})).Append("on-remaining", chain...).Bind(&d.onRemaining, nil)
	}
}

// WithValidate runs the validator over the model after it has been
// decoded.  Validation failures abort Decode.
func WithValidate(v Validate) DecoderOptArg {
	return func(d *FlagDecoder) error {
		d.validator = v
		return nil
	}
}

// NewFlagDecoder creates a value decoder over a private copy of args.
// A nil config behaves like NewFlagConfiguration().  The configuration
// is only read, never written, so one configuration can serve many
// decoders.
func NewFlagDecoder(args []string, config *FlagConfiguration, opts ...DecoderOptArg) *FlagDecoder {
	if config == nil {
		config = NewFlagConfiguration()
	}
	d := &FlagDecoder{
		source:    copyTokens(args),
		config:    config,
		restIndex: -1,
	}
	d.delayedErr = d.opts(opts)
	return d
}

func (d *FlagDecoder) opts(opts []DecoderOptArg) error {
	for _, f := range opts {
		err := f(d)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode fills model, which must be a non-nil pointer to a struct,
// from the decoder's tokens.  On failure the pass is abandoned:
// tokens consumed before the failure stay consumed and the model is
// partially written.
func (d *FlagDecoder) Decode(model interface{}) error {
	if d.delayedErr != nil {
		return d.delayedErr
	}
	v, err := modelValue(model)
	if err != nil {
		return err
	}
	debugf("decode %s over %d tokens", v.Type(), len(d.source))
	err = decodeStruct(d, v.Type(), v)
	if err != nil {
		return err
	}
	if d.validator != nil {
		err := d.validator.Struct(model)
		if err != nil {
			return ValidationError(errors.Wrap(err, v.Type().String()))
		}
	}
	if d.onRemaining != nil {
		return d.onRemaining(d.Remaining())
	}
	return nil
}

// Decode is a convenience wrapper: it builds a FlagDecoder, fills
// model from args, and returns the tokens no field claimed.
func Decode(model interface{}, args []string, config *FlagConfiguration, opts ...DecoderOptArg) ([]string, error) {
	d := NewFlagDecoder(args, config, opts...)
	err := d.Decode(model)
	if err != nil {
		return nil, err
	}
	return d.Remaining(), nil
}

// Remaining returns a snapshot of the tokens that are still
// unconsumed.  After a full decode these are the leftover positional
// arguments (which the rest field, if any, has already captured
// without consuming).
func (d *FlagDecoder) Remaining() []string {
	return copyTokens(d.source)
}

// removeAt drops count tokens starting at pos.  The source slice is
// owned by this decoder, so splicing in place is safe.
func (d *FlagDecoder) removeAt(pos int, count int) {
	debugf("consume %v at %d", d.source[pos:pos+count], pos)
	d.source = append(d.source[:pos], d.source[pos+count:]...)
}

// Bool reports whether the current field's flag is present and, when
// it is, consumes that single token.  Booleans are presence flags:
// absence is false, never an error.
func (d *FlagDecoder) Bool() (bool, error) {
	pos, ok := d.fieldPos()
	if !ok {
		return false, nil
	}
	d.removeAt(pos, 1)
	return true, nil
}

// String is the base conversion primitive: every other scalar read
// goes through it.  In rest mode it returns the next element of the
// frozen leftover view without consuming anything; otherwise it
// resolves the flag, reads the token after it, and consumes both.
func (d *FlagDecoder) String() (string, error) {
	if d.state == capturingRest {
		if d.restIndex < 0 || d.restIndex >= len(d.restView) {
			return "", commonerrors.LibraryError(errors.Errorf(
				"internal error: rest index %d outside view of %d", d.restIndex, len(d.restView)))
		}
		return d.restView[d.restIndex], nil
	}
	pos, ok := d.fieldPos()
	if !ok {
		return "", MissingFieldError(errors.Errorf(
			"%s is required", canonicalFieldName(d.currentField)))
	}
	if pos+1 >= len(d.source) {
		return "", MissingFieldError(errors.Errorf(
			"%s is missing a following value", canonicalFieldName(d.currentField)))
	}
	value := d.source[pos+1]
	d.removeAt(pos, 2)
	return value, nil
}

func (d *FlagDecoder) Int() (int64, error) {
	s, err := d.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ConversionError(errors.Errorf(
			"could not convert %s to a(n) integer", s))
	}
	return n, nil
}

func (d *FlagDecoder) Uint() (uint64, error) {
	s, err := d.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ConversionError(errors.Errorf(
			"could not convert %s to a(n) unsigned integer", s))
	}
	return n, nil
}

func (d *FlagDecoder) Float() (float64, error) {
	s, err := d.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ConversionError(errors.Errorf(
			"could not convert %s to a(n) float", s))
	}
	return n, nil
}

func (d *FlagDecoder) Char() (rune, error) {
	s, err := d.String()
	if err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, InvalidCharError(errors.Errorf(
			"%s is not a single character", s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Option probes for the current field's flag and delegates with a
// presence indicator, which is how an absent optional field yields an
// empty value instead of a required-field error.
func (d *FlagDecoder) Option(f func(d Decoder, present bool) error) error {
	_, ok := d.fieldPos()
	return f(d, ok)
}

// Seq captures the rest field: it freezes a view of whatever tokens
// remain and emits each of them as one element.  Only the configured
// rest field may be a slice, and nothing may follow it.
func (d *FlagDecoder) Seq(f func(d Decoder, length int) error) error {
	if !d.config.isRestField(d.currentField) {
		return UnsupportedShapeError(errors.Errorf(
			"slice field %s is not the configured rest field (%s)",
			d.currentField, d.config.Rest()))
	}
	d.restView = copyTokens(d.source)
	d.state = capturingRest
	d.restIndex = -1
	debugf("rest capture of %d tokens", len(d.restView))
	err := f(d, len(d.restView))
	d.done = true
	return err
}

func (d *FlagDecoder) SeqElem(index int, f func(d Decoder) error) error {
	d.restIndex++
	return f(d)
}

func (d *FlagDecoder) Struct(f func(d Decoder) error) error {
	return f(d)
}

// StructField is the per-field entry point: it records the field
// context that fieldPos and error messages read, and rejects any
// visit after rest capture has completed.
func (d *FlagDecoder) StructField(name string, index int, f func(d Decoder) error) error {
	if d.done {
		return UnsupportedShapeError(errors.Errorf(
			"field %s is declared after the rest field, which must be last", name))
	}
	d.currentField = name
	return f(d)
}
