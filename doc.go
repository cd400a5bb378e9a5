// Obligatory // comment

/*
Package mallet uses reflection to fill a flags struct from command
line arguments and to generate a usage summary for that same struct.

Both jobs are driven by one field-traversal contract: a Decoder has a
method per primitive shape (bool, string, numbers, Char, pointer,
slice, struct) and a reflection driver visits the struct's fields in
declaration order, dispatching each field to the active Decoder.  Two
decoders implement the contract.  FlagDecoder finds and removes
matching tokens and converts their operands.  UsageDecoder records a
descriptor per field and never looks at tokens.  Neither knows the
other exists.

The basics:

	type options struct {
		Color     *string
		LineCount string
		Verbose   bool
		Rest      []string
	}

	config := mallet.NewFlagConfiguration().
		Short("verbose", 'v').
		Desc("count lines in files")

	var opts options
	remaining, err := mallet.Decode(&opts, os.Args[1:], config)

Flags are matched by the field's canonical long form: "--" plus the
kebab-cased field name, so LineCount becomes --line-count.  A field
with a configured alias also matches its two-character short form
(-v).  Boolean fields are presence flags and consume one token; all
other fields consume the flag token and the token after it.  Pointer
fields are optional and stay nil when their flag is absent.  The one
field named by the configuration's rest-field name (default "rest")
receives all tokens left over after every other field has been
resolved; it must be the last field.

Usage text for the same struct comes from the other decoder:

	text, err := mallet.Usage(&options{}, config, false)

which renders mandatory fields first, then optional ones in brackets:

	    --line-count
	    [--color]
	-v, [--verbose]

Configuration can also be declared in struct tags (see ConfigFromTags)
or loaded from a YAML or JSON file (see ConfigFromFile).

Not supported, and rejected loudly before any token is examined: map
fields, array fields, nested structs, and --flag=value syntax.
Integer fields narrower than 64 bits truncate silently on overflow.
Decoding is single-threaded and one-shot: build a decoder, drive it
once, discard it.
*/
package mallet
