//go:build !darwin

package permissions

func accessibilityTrusted() (bool, bool) {
	return false, false
}
