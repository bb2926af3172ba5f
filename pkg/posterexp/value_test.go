package posterexp_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
)

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, "", 0, int64(0), uint8(0), 0.0, float32(0), math.NaN(), json.Number("0")}
	for _, v := range falsy {
		assert.False(t, posterexp.Truthy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, "0", "false", " ", 1, -1, 0.5, uint(3), json.Number("12"), []int{}}
	for _, v := range truthy {
		assert.True(t, posterexp.Truthy(v), "%#v should be truthy", v)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"精装", "精装"},
		{true, "true"},
		{false, "false"},
		{268, "268"},
		{int64(-42), "-42"},
		{uint16(7), "7"},
		{268.0, "268"},
		{89.5, "89.5"},
		{float32(0.1), "0.1"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.5e21, "-1.5e+21"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{json.Number("1.25"), "1.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, posterexp.Stringify(tt.in), "Stringify(%#v)", tt.in)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{268, "268万"},
		{1000, "1,000万"},
		{12345, "12,345万"},
		{123456, "123,456万"},
		{1234567, "1,234,567万"},
		{-1234, "-1,234万"},
		{1234.5678, "1,234.5,678万"},
		{"3000", "3,000万"},
		{"a123", "a,123万"},
		{1.2345678901234568e20, "123,456,789,012,345,680,000万"},
		{1e21, "1e+21万"},
		{1.5e-7, "1.5e-7万"},
		{nil, "0万"},
		{false, "0万"},
		{"", "0万"},
		{true, "true万"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, posterexp.FormatPrice(tt.in), "FormatPrice(%#v)", tt.in)
	}
}

func TestLookup(t *testing.T) {
	v, ok := posterexp.Lookup(nil, "price")
	assert.False(t, ok)
	assert.Nil(t, v)

	v, ok = posterexp.Lookup(posterexp.Record{"price": nil}, "price")
	assert.True(t, ok)
	assert.Nil(t, v)
}
