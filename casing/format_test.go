package casing

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pflag.Value = (*NamingFormat)(nil)

func Test_ParseNamingFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    NamingFormat
		wantErr error
	}{
		{"camel", CamelCase, nil},
		{"camelCase", CamelCase, nil},
		{"underscores", Underscores, nil},
		{"snake", Underscores, nil},
		{"snake_case", Underscores, nil},
		{" SNAKE ", Underscores, nil},
		{"pascal", PascalCase, nil},
		{"PascalCase", PascalCase, nil},
		{"kebab", 0, ErrInvalidFormat},
		{"", 0, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.name), func(t *testing.T) {
			got, err := ParseNamingFormat(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_NamingFormatString(t *testing.T) {
	for _, f := range Formats() {
		parsed, err := ParseNamingFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "NamingFormat(42)", NamingFormat(42).String())
}

func Test_MustParseNamingFormat(t *testing.T) {
	assert.Equal(t, PascalCase, MustParseNamingFormat("pascal"))
	assert.Panics(t, func() {
		MustParseNamingFormat("screaming")
	})
}

func Test_NamingFormatText(t *testing.T) {
	text, err := PascalCase.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pascal", string(text))

	var f NamingFormat
	require.NoError(t, f.UnmarshalText([]byte("snake")))
	assert.Equal(t, Underscores, f)

	assert.ErrorIs(t, f.UnmarshalText([]byte("title")), ErrInvalidFormat)
}

func Test_NamingFormatFlagValue(t *testing.T) {
	f := Underscores
	require.NoError(t, f.Set("pascal"))
	assert.Equal(t, PascalCase, f)
	assert.Equal(t, "format", f.Type())
	assert.Error(t, f.Set("nope"))
}
