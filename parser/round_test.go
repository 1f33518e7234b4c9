package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestRoundTrunc(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"3.6964285", 3, "3.696"},
		{"1.2350", 2, "1.24"},
		{"1.2349", 2, "1.23"},
		{"2", 1, "2.0"},
		{"0.5", 2, "0.50"},
		{"-1.2345", 2, "-1.23"},
		{"-1.2350", 2, "-1.24"},
		{"0", 3, "0.000"},
	}
	for _, c := range cases {
		got := roundTrunc(dec(t, c.in), c.places).StringFixed(c.places)
		assert.Equal(t, c.want, got, "roundTrunc(%s, %d)", c.in, c.places)
	}
}

func TestRatioStr(t *testing.T) {
	// 500次等待共1800秒 -> 平均3.600ms这类换算的基础
	s, ok := ratioStr(dec(t, "500"), dec(t, "10000"), dec(t, "1000"), 3)
	require.True(t, ok)
	assert.Equal(t, "50.000", s)

	// 1800秒占30分钟DB Time的百分比
	s, ok = ratioStr(dec(t, "1800"), dec(t, "30").Mul(decSixty), decHundred, 1)
	require.True(t, ok)
	assert.Equal(t, "100.0", s)

	_, ok = ratioStr(dec(t, "1"), decimal.Zero, decOne, 1)
	assert.False(t, ok)
}

func TestDeriveAvgMs(t *testing.T) {
	assert.Equal(t, "3.600", deriveAvgMs("1800", "500000"))
	assert.Equal(t, "4.000", deriveAvgMs("2", "500"))
	assert.Equal(t, "", deriveAvgMs("100", "0"))
	assert.Equal(t, "", deriveAvgMs("100", "n/a"))
	assert.Equal(t, "", deriveAvgMs("n/a", "100"))
}

func TestCleanNumber(t *testing.T) {
	assert.Equal(t, "1234567.8", cleanNumber(" 1,234,567.8 "))
	assert.Equal(t, "42", cleanNumber("42"))
}

func TestParseDec(t *testing.T) {
	d, ok := parseDec("1.2E+05")
	require.True(t, ok)
	assert.Equal(t, "120000", d.String())

	d, ok = parseDec("1,048,576")
	require.True(t, ok)
	assert.Equal(t, "1048576", d.String())

	_, ok = parseDec("N/A")
	assert.False(t, ok)
}
