//go:build mobile

package utils

// IsMobile ebitenmobile 构建总是返回 true
func IsMobile() bool {
	return true
}
