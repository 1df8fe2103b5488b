package util

import (
	"hash/crc32"
	"strings"
	"unicode/utf8"
)

// HashString 稳定的字符串哈希，同一输入跨进程结果一致
func HashString(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}

// RuneLen 去除首尾空白后的字符数
func RuneLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// TruncateRunes 按字符截断
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// ClampInt 将 v 限制在 [lo, hi]，v 为 0 时取默认值
func ClampInt(v, def, lo, hi int) int {
	if v == 0 {
		v = def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
