//go:build !android

package store

// ensureStorageDir 非 Android 平台由 gdata 自行创建目录
func ensureStorageDir() error {
	return nil
}
