package cgt_test

import (
	"testing"

	"github.com/partizangames/cgt/cgt"
	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/nimber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    cgt.Value
		want string
	}{
		{cgt.Zero(), "0"},
		{cgt.Integer(3), "3"},
		{cgt.Integer(-3), "-3"},
		{cgt.Number(dyadic.New(1, 2)), "1/4"},
		{cgt.Star(nimber.New(1)), "*1"},
		{cgt.Star(nimber.New(2)), "*2"},
		{cgt.Switch(cgt.Integer(1), cgt.Integer(-1)), "{1 | -1}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func TestParseRoundtrip(t *testing.T) {
	for _, v := range sampleValues() {
		text := v.String()
		parsed, err := cgt.Parse(text)
		require.NoError(t, err, "text=%q", text)
		assert.True(t, cgt.Eq(parsed, v), "text=%q parsed=%s want=%s", text, parsed.String(), v.String())
	}
}

func TestParseGeneralForm(t *testing.T) {
	v, err := cgt.Parse("{0 | 0}")
	require.NoError(t, err)
	assert.True(t, cgt.Eq(v, cgt.Star(nimber.New(1))))
}

func TestParseNestedBraces(t *testing.T) {
	v, err := cgt.Parse("{{0 | } | }")
	require.NoError(t, err)
	assert.True(t, cgt.Eq(v, cgt.Integer(2)))
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := cgt.Parse("{0 0}")
	assert.ErrorIs(t, err, cgt.ErrParse)
}

func TestMulInt(t *testing.T) {
	half := cgt.Number(dyadic.New(1, 1))
	v, err := cgt.MulInt(2, half)
	require.NoError(t, err)
	assert.True(t, cgt.Eq(v, cgt.Integer(1)))

	_, err = cgt.MulInt(2, cgt.Star(nimber.New(1)))
	assert.ErrorIs(t, err, cgt.ErrNotNumber)
}

func TestIncentives(t *testing.T) {
	sw := cgt.Switch(cgt.Integer(1), cgt.Integer(-1))
	li, ri := cgt.Incentives(sw)
	require.Len(t, li, 1)
	require.Len(t, ri, 1)
	// LI = {1 - sw}, RI = {sw - (-1)}; both should be confused with 0 at
	// a hot switch (incentives of a hot game straddle zero).
	assert.False(t, cgt.Eq(li[0], cgt.Zero()))
	assert.False(t, cgt.Eq(ri[0], cgt.Zero()))
}

func TestBirthday(t *testing.T) {
	assert.Equal(t, 0, cgt.Birthday(cgt.Zero()))
	assert.Equal(t, 1, cgt.Birthday(cgt.Integer(1)))
	assert.Equal(t, 2, cgt.Birthday(cgt.Integer(2)))
	assert.Equal(t, 1, cgt.Birthday(cgt.Star(nimber.New(1))))
}
