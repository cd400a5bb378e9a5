package mallet

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type compileFlags struct {
	Color    bool
	Count    int
	Maybe    *int
	SomeSome bool
}

type lineFlags struct {
	Color     *string
	LineCount string
	Verbose   bool
}

type scalarFlags struct {
	Count int
	Ratio float64
	Sep   Char
	Name  string
}

type tinyFlags struct {
	Tiny int8
}

var decodeCases = []struct {
	name      string
	base      interface{}
	args      []string
	config    *FlagConfiguration
	want      interface{}
	remaining []string
	errText   string
	errIs     func(error) bool
}{
	{
		name: "bools only, no tokens, everything false",
		base: &struct {
			Color   bool
			Verbose bool
		}{},
		args: []string{},
		want: &struct {
			Color   bool
			Verbose bool
		}{},
		remaining: []string{},
	},
	{
		name:   "long form, short alias, and leftovers together",
		base:   &compileFlags{},
		args:   []string{"--count", "1", "foo", "-c"},
		config: NewFlagConfiguration().Short("color", 'c'),
		want: &compileFlags{
			Color: true,
			Count: 1,
		},
		remaining: []string{"foo"},
	},
	{
		name:   "value field through its short alias",
		base:   &compileFlags{},
		args:   []string{"-n", "7", "--color"},
		config: NewFlagConfiguration().Short("count", 'n'),
		want: &compileFlags{
			Color: true,
			Count: 7,
		},
		remaining: []string{},
	},
	{
		name:    "missing mandatory field names the canonical form",
		base:    &lineFlags{},
		args:    []string{"--verbose"},
		errText: "--line-count is required",
		errIs:   IsMissingFieldError,
	},
	{
		name:    "flag at end of arguments has no operand",
		base:    &compileFlags{},
		args:    []string{"--count"},
		errText: "--count is missing a following value",
		errIs:   IsMissingFieldError,
	},
	{
		name:    "conversion failure identifies token and kind",
		base:    &compileFlags{},
		args:    []string{"--count", "abc"},
		errText: "could not convert abc to a(n) integer",
		errIs:   IsConversionError,
	},
	{
		name: "scalar round trip",
		base: &scalarFlags{},
		args: []string{"--count", "42", "--ratio", "2.5", "--sep", ":", "--name", "joe"},
		want: &scalarFlags{
			Count: 42,
			Ratio: 2.5,
			Sep:   ':',
			Name:  "joe",
		},
		remaining: []string{},
	},
	{
		name:    "multi-character operand for a Char field",
		base:    &scalarFlags{},
		args:    []string{"--count", "1", "--ratio", "1.5", "--sep", "xy"},
		errText: "xy is not a single character",
		errIs:   IsInvalidCharError,
	},
	{
		name: "sub-word integers truncate silently",
		base: &tinyFlags{},
		args: []string{"--tiny", "300"},
		want: &tinyFlags{
			Tiny: 44, // 300 mod 256
		},
		remaining: []string{},
	},
	{
		name: "absent optional stays nil",
		base: &lineFlags{},
		args: []string{"--line-count", "10"},
		want: &lineFlags{
			LineCount: "10",
		},
		remaining: []string{},
	},
	{
		name: "present optional decodes its operand",
		base: &lineFlags{},
		args: []string{"--color", "red", "--line-count", "10"},
		want: &lineFlags{
			Color:     pointer.ToString("red"),
			LineCount: "10",
		},
		remaining: []string{},
	},
	{
		name:   "optional through its short alias",
		base:   &lineFlags{},
		args:   []string{"-c", "blue", "--line-count", "3"},
		config: NewFlagConfiguration().Short("color", 'c'),
		want: &lineFlags{
			Color:     pointer.ToString("blue"),
			LineCount: "3",
		},
		remaining: []string{},
	},
}

func TestDecode(t *testing.T) {
	for _, tc := range decodeCases {
		t.Log(tc.name)
		d := NewFlagDecoder(tc.args, tc.config)
		err := d.Decode(tc.base)
		if tc.errText != "" {
			require.NotNilf(t, err, "expected decode error %s", tc.errText)
			assert.Contains(t, err.Error(), tc.errText, "decode error")
			if tc.errIs != nil {
				assert.True(t, tc.errIs(err), "error classification")
			}
			continue
		}
		require.NoError(t, err, "decode")
		assert.Equal(t, tc.want, tc.base, "data")
		assert.Equal(t, tc.remaining, d.Remaining(), "remaining")
	}
}

func TestTokenRemovalCounts(t *testing.T) {
	var flags struct {
		Verbose bool
		Name    string
	}
	d := NewFlagDecoder([]string{"a", "--verbose", "b", "--name", "x", "c"}, nil)
	require.NoError(t, d.Decode(&flags), "decode")
	// one token for the boolean, two for the flag with operand
	assert.Equal(t, []string{"a", "b", "c"}, d.Remaining(), "remaining")
	assert.True(t, flags.Verbose, "verbose")
	assert.Equal(t, "x", flags.Name, "name")
}

func TestRestCapture(t *testing.T) {
	var flags struct {
		Color   bool
		Verbose bool
		Rest    []string
	}
	d := NewFlagDecoder([]string{"--verbose", "hello", "goodbye"}, nil)
	require.NoError(t, d.Decode(&flags), "decode")
	assert.False(t, flags.Color, "color")
	assert.True(t, flags.Verbose, "verbose")
	assert.Equal(t, []string{"hello", "goodbye"}, flags.Rest, "rest")
	// rest capture reads a frozen view and consumes nothing
	assert.Equal(t, []string{"hello", "goodbye"}, d.Remaining(), "remaining")
}

func TestRestCaptureConfiguredName(t *testing.T) {
	var flags struct {
		Verbose bool
		Files   []string
	}
	config := NewFlagConfiguration().RestField("files")
	remaining, err := Decode(&flags, []string{"one", "--verbose", "two"}, config)
	require.NoError(t, err, "decode")
	assert.Equal(t, []string{"one", "two"}, flags.Files, "files")
	assert.Equal(t, []string{"one", "two"}, remaining, "remaining")
}

func TestFieldAfterRestFails(t *testing.T) {
	var flags struct {
		Rest  []string
		After string
	}
	// fails fast no matter what the arguments hold
	for _, args := range [][]string{{}, {"--after", "x"}} {
		err := NewFlagDecoder(args, nil).Decode(&flags)
		require.NotNil(t, err, "expected error")
		assert.True(t, IsUnsupportedShapeError(err), "classification")
		assert.Contains(t, err.Error(), "after the rest field", "error text")
	}
}

func TestSliceThatIsNotTheRestField(t *testing.T) {
	var flags struct {
		Things []string
	}
	err := NewFlagDecoder(nil, nil).Decode(&flags)
	require.NotNil(t, err, "expected error")
	assert.True(t, IsUnsupportedShapeError(err), "classification")
}

func TestUnsupportedShapes(t *testing.T) {
	cases := []struct {
		name string
		base interface{}
	}{
		{"map", &struct {
			M map[string]string
		}{}},
		{"nested struct", &struct {
			Inner struct{ X string }
		}{}},
		{"array", &struct {
			A [2]string
		}{}},
	}
	for _, tc := range cases {
		t.Log(tc.name)
		err := NewFlagDecoder(nil, nil).Decode(tc.base)
		require.NotNil(t, err, "expected error")
		assert.True(t, IsUnsupportedShapeError(err), "classification")
	}
}

func TestBadModel(t *testing.T) {
	d := NewFlagDecoder(nil, nil)
	assert.Error(t, d.Decode(nil), "nil model")
	assert.Error(t, d.Decode(compileFlags{}), "non-pointer model")
	var p *compileFlags
	assert.Error(t, d.Decode(p), "nil pointer model")
	x := 7
	assert.Error(t, d.Decode(&x), "pointer to non-struct")
}

func TestOnRemaining(t *testing.T) {
	var flags struct {
		Verbose bool
	}
	var called int
	d := NewFlagDecoder([]string{"--verbose", "xyz", "abc"}, nil,
		OnRemaining(func(args []string) {
			assert.Equal(t, []string{"xyz", "abc"}, args, "remaining args")
			called++
		}))
	require.NoError(t, d.Decode(&flags), "decode")
	assert.True(t, flags.Verbose, "verbose")
	assert.Equal(t, 1, called, "on-remaining call count")
}

func TestWithValidate(t *testing.T) {
	type validated struct {
		Name  string `validate:"required"`
		Email *string
	}
	var flags validated
	err := NewFlagDecoder([]string{"--name", "joe"}, nil,
		WithValidate(validator.New())).Decode(&flags)
	require.NoError(t, err, "valid decode")

	var empty struct {
		Count int  `validate:"min=10"`
		Skip  bool `validate:"-"`
	}
	err = NewFlagDecoder([]string{"--count", "3"}, nil,
		WithValidate(validator.New())).Decode(&empty)
	require.NotNil(t, err, "expected validation error")
	assert.True(t, IsValidationError(err), "classification")
	assert.Contains(t, err.Error(), "min", "validation error")
}

func TestDecodeAliasesCoverAllShapes(t *testing.T) {
	// long form and alias are interchangeable for booleans, values,
	// and optionals alike
	type flags struct {
		Quick bool
		Depth int
		Tag   *string
	}
	config := NewFlagConfiguration().
		Short("quick", 'q').
		Short("depth", 'd').
		Short("tag", 't')
	long := flags{}
	_, err := Decode(&long, []string{"--quick", "--depth", "3", "--tag", "x"}, config)
	require.NoError(t, err, "long decode")
	short := flags{}
	_, err = Decode(&short, []string{"-q", "-d", "3", "-t", "x"}, config)
	require.NoError(t, err, "short decode")
	assert.Equal(t, long, short, "long and short forms agree")
}
