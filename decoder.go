package mallet

import (
	"reflect"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Char is a single-character field.  Reflection cannot tell rune from
// int32, so character fields must be declared with this type; plain
// int32 fields decode as numbers.
type Char rune

var charType = reflect.TypeOf(Char(0))

// Decoder is the field-traversal contract shared by FlagDecoder and
// UsageDecoder.  The reflection driver visits a struct's fields in
// declaration order and calls one method per field shape; what a
// method does is entirely up to the implementation.  Callbacks receive
// a Decoder rather than closing over one so that an implementation can
// substitute a different decoder for an inner traversal.
type Decoder interface {
	Bool() (bool, error)
	Int() (int64, error)
	Uint() (uint64, error)
	Float() (float64, error)
	Char() (rune, error)
	String() (string, error)

	// Option is called for pointer fields.  The callback's present
	// flag tells it whether a matching flag exists; when false the
	// callback should leave the field empty rather than decode it.
	Option(f func(d Decoder, present bool) error) error

	// Seq is called for slice fields.  The decoder chooses the
	// element count and the callback visits each element through
	// SeqElem.
	Seq(f func(d Decoder, length int) error) error
	SeqElem(index int, f func(d Decoder) error) error

	Struct(f func(d Decoder) error) error
	StructField(name string, index int, f func(d Decoder) error) error
}

// modelValue validates that a model is usable as a decode target and
// returns the struct value behind the pointer.
func modelValue(model interface{}) (reflect.Value, error) {
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Type().Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		return reflect.Value{}, commonerrors.ProgrammerError(errors.Errorf(
			"model must be a non-nil pointer to a struct, not %T", model))
	}
	return v.Elem(), nil
}

// decodeStruct drives one complete pass: every exported field, once,
// in declaration order.  Unexported fields are skipped because they
// cannot be set.
func decodeStruct(d Decoder, t reflect.Type, v reflect.Value) error {
	return d.Struct(func(d Decoder) error {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			i := i
			err := d.StructField(f.Name, i, func(d Decoder) error {
				return decodeValue(d, f.Type, v.Field(i))
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// decodeValue dispatches a single field to the decoder method for its
// shape.  Sub-word integer and float widths truncate silently when the
// decoded value does not fit; that mirrors the flag semantics this
// package inherits and is deliberate.
func decodeValue(d Decoder, t reflect.Type, v reflect.Value) error {
	if t == charType {
		r, err := d.Char()
		if err != nil {
			return err
		}
		v.SetInt(int64(r))
		return nil
	}
	switch t.Kind() {
	case reflect.Bool:
		b, err := d.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.String:
		s, err := d.String()
		if err != nil {
			return err
		}
		v.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := d.Int()
		if err != nil {
			return err
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := d.Uint()
		if err != nil {
			return err
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		n, err := d.Float()
		if err != nil {
			return err
		}
		v.SetFloat(n)
		return nil
	case reflect.Ptr:
		return d.Option(func(d Decoder, present bool) error {
			if !present {
				return nil
			}
			e := reflect.New(t.Elem())
			err := decodeValue(d, t.Elem(), e.Elem())
			if err != nil {
				return err
			}
			v.Set(e)
			return nil
		})
	case reflect.Slice:
		return d.Seq(func(d Decoder, length int) error {
			a := reflect.MakeSlice(t, length, length)
			elemType := t.Elem()
			for i := 0; i < length; i++ {
				i := i
				err := d.SeqElem(i, func(d Decoder) error {
					return decodeValue(d, elemType, a.Index(i))
				})
				if err != nil {
					return err
				}
			}
			v.Set(a)
			return nil
		})
	case reflect.Struct:
		return UnsupportedShapeError(errors.Errorf(
			"nested structs are not supported (%s)", t))
	case reflect.Map:
		return UnsupportedShapeError(errors.Errorf(
			"map fields are not supported (%s)", t))
	case reflect.Array:
		return UnsupportedShapeError(errors.Errorf(
			"array fields are not supported (%s)", t))
	default:
		return UnsupportedShapeError(errors.Errorf(
			"cannot decode fields of type %s", t))
	}
}
