package config

import "strings"

// ParseBool 只接受 "true" 与 "1"，其余取值（包括大小写变体）一律为 false
func ParseBool(raw string) bool {
	return raw == "true" || raw == "1"
}

// parseStrictBool use_compression 只认 "true"
func parseStrictBool(raw string) bool {
	return raw == "true"
}

// ParseProxyType 未知类型返回 ProxyTypeUnset，由校验阶段补默认值
func ParseProxyType(raw string) ProxyType {
	switch t := ProxyType(raw); t {
	case ProxyTypeTCP, ProxyTypeHTTP, ProxyTypeHTTPS, ProxyTypeUDP:
		return t
	}
	return ProxyTypeUnset
}

// ParseInt 按 atoi 语义取最长数字前缀，没有数字时返回 0
func ParseInt(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\v\f\r")
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
