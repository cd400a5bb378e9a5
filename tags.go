package mallet

import (
	"reflect"
	"unicode/utf8"

	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

type flagTag struct {
	Short string `pt:"0"`    // single-character alias
	Rest  bool   `pt:"rest"` // this field captures the leftover tokens
}

// ConfigFromTags builds a FlagConfiguration from "flag" struct tags,
// for callers who would rather declare configuration next to the
// fields than in builder calls:
//
//	type options struct {
//		Verbose bool     `flag:"v"`
//		Files   []string `flag:",rest"`
//	}
//
// The first tag value is the short alias (it may be empty, but don't
// skip the comma).  Fields without a flag tag need no configuration
// and are simply decoded by name.
func ConfigFromTags(model interface{}) (*FlagConfiguration, error) {
	v, err := modelValue(model)
	if err != nil {
		return nil, err
	}
	config := NewFlagConfiguration()
	var walkErr error
	reflectutils.WalkStructElements(v.Type(), func(f reflect.StructField) bool {
		tag := reflectutils.SplitTag(f.Tag).Set().Get("flag")
		if tag.Tag == "" {
			return true
		}
		var ft flagTag
		err := tag.Fill(&ft)
		if err != nil {
			walkErr = UnsupportedShapeError(errors.Wrap(err, f.Name))
			return false
		}
		if ft.Short != "" {
			if utf8.RuneCountInString(ft.Short) != 1 {
				walkErr = UnsupportedShapeError(errors.Errorf(
					"alias %q on %s is not a single character", ft.Short, f.Name))
				return false
			}
			alias, _ := utf8.DecodeRuneInString(ft.Short)
			config = config.Short(f.Name, alias)
		}
		if ft.Rest {
			config = config.RestField(f.Name)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return config, nil
}
