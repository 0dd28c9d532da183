package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", false},
		{"True", false},
		{"yes", false},
		{"0", false},
		{"", false},
		{" true", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBool(tt.raw), "ParseBool(%q)", tt.raw)
	}
}

func TestParseStrictBool(t *testing.T) {
	assert.True(t, parseStrictBool("true"))
	assert.False(t, parseStrictBool("1"))
	assert.False(t, parseStrictBool("TRUE"))
}

func TestParseProxyType(t *testing.T) {
	for _, raw := range []string{"tcp", "http", "https", "udp"} {
		assert.Equal(t, ProxyType(raw), ParseProxyType(raw))
	}
	assert.Equal(t, ProxyTypeUnset, ParseProxyType("ftp"))
	assert.Equal(t, ProxyTypeUnset, ParseProxyType("TCP"))
	assert.Equal(t, ProxyTypeUnset, ParseProxyType(""))
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"8080", 8080},
		{"-1", -1},
		{"+7", 7},
		{" 12", 12},
		{"8080abc", 8080},
		{"-", 0},
		{"abc", 0},
		{"", 0},
		{"010", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseInt(tt.raw), "ParseInt(%q)", tt.raw)
	}
}
