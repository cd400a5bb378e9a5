package mallet

import (
	"unicode/utf8"

	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// ConfigFromFile loads a FlagConfiguration from a YAML or JSON
// document:
//
//	description: count lines in files
//	rest: files
//	short:
//	  verbose: v
//	  color: c
//
// Pass nflex.WithFS to read from an fs.FS (embedded configurations,
// for example) instead of the filesystem.
func ConfigFromFile(file string, args ...nflex.UnmarshalFileArg) (*FlagConfiguration, error) {
	source, err := nflex.UnmarshalFile(file, args...)
	if err != nil {
		return nil, err
	}
	config := NewFlagConfiguration()
	if source.Exists("description") {
		desc, err := source.GetString("description")
		if err != nil {
			return nil, errors.Wrapf(err, "description in %s", file)
		}
		config = config.Desc(desc)
	}
	if source.Exists("rest") {
		rest, err := source.GetString("rest")
		if err != nil {
			return nil, errors.Wrapf(err, "rest in %s", file)
		}
		config = config.RestField(rest)
	}
	if source.Exists("short") {
		keys, err := source.Keys("short")
		if err != nil {
			return nil, errors.Wrapf(err, "short in %s", file)
		}
		for _, field := range keys {
			alias, err := source.GetString("short", field)
			if err != nil {
				return nil, errors.Wrapf(err, "short alias for %s in %s", field, file)
			}
			if utf8.RuneCountInString(alias) != 1 {
				return nil, UnsupportedShapeError(errors.Errorf(
					"alias %q for %s in %s is not a single character", alias, field, file))
			}
			r, _ := utf8.DecodeRuneInString(alias)
			config = config.Short(field, r)
		}
	}
	return config, nil
}
