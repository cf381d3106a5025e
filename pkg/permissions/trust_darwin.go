//go:build darwin

package permissions

/*
#cgo darwin LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>
*/
import "C"

func accessibilityTrusted() (bool, bool) {
	return C.AXIsProcessTrusted() != C.Boolean(0), true
}
