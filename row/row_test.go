package row

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		Name string
		line string
		want []float64
	}{
		{Name: "Integers", line: "6,148,72", want: []float64{6, 148, 72}},
		{Name: "Decimals", line: "0.627,33.6,1", want: []float64{0.627, 33.6, 1}},
		{Name: "Blanks", line: " 1 , 2,3 ", want: []float64{1, 2, 3}},
		{Name: "Exponent", line: "1e3,-2.5E-1", want: []float64{1000, -0.25}},
		{Name: "Single", line: "42", want: []float64{42}},
	} {
		got, err := Parse(test.line)
		require.NoError(t, err, "Case %s", test.Name)
		assert.Equal(t, test.want, got, "Case %s", test.Name)
	}
}

func TestParseError(t *testing.T) {
	for _, test := range []struct {
		Name   string
		line   string
		column int
		token  string
		cause  error
	}{
		{Name: "Word", line: "6,abc,72", column: 1, token: "abc", cause: strconv.ErrSyntax},
		{Name: "Empty field", line: "6,,72", column: 1, token: "", cause: strconv.ErrSyntax},
		{Name: "Empty line", line: "", column: 0, token: "", cause: strconv.ErrSyntax},
		{Name: "Trailing separator", line: "1,2,", column: 2, token: "", cause: strconv.ErrSyntax},
		{Name: "NaN", line: "NaN,1,2", column: 0, token: "NaN", cause: ErrNotFinite},
		{Name: "Inf", line: "1,Inf,2", column: 1, token: "Inf", cause: ErrNotFinite},
		{Name: "Negative infinity", line: "1,2, -infinity", column: 2, token: " -infinity", cause: ErrNotFinite},
		{Name: "Overflow", line: "1e400,1", column: 0, token: "1e400", cause: strconv.ErrRange},
	} {
		values, err := Parse(test.line)
		require.Error(t, err, "Case %s", test.Name)
		assert.Nil(t, values, "Case %s", test.Name)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), "Case %s: want *ParseError, got %T", test.Name, err)
		assert.Equal(t, test.column, perr.Column, "Case %s", test.Name)
		assert.Equal(t, test.token, perr.Token, "Case %s", test.Name)
		assert.True(t, errors.Is(err, test.cause), "Case %s", test.Name)
		assert.Contains(t, err.Error(), "column", "Case %s", test.Name)
	}
}

func TestParseN(t *testing.T) {
	values, err := ParseN("6,148,72", 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 148, 72}, values)

	_, err = ParseN("6,148,72", 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldCount))

	// A parse failure is reported before the length check.
	_, err = ParseN("6,x", 9)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.False(t, errors.Is(err, ErrFieldCount))
}

func TestCheckFieldCount(t *testing.T) {
	assert.NoError(t, CheckFieldCount([]float64{1, 2}, 2))
	assert.ErrorIs(t, CheckFieldCount(nil, 1), ErrFieldCount)
	assert.ErrorIs(t, CheckFieldCount([]float64{1, 2, 3}, 2), ErrFieldCount)
}
