//go:build windows

package platform

import "golang.org/x/sys/windows"

var procSetProcessDPIAware = windows.NewLazySystemDLL("user32.dll").NewProc("SetProcessDPIAware")

// EnableDPIAwareness opts the process out of DPI virtualisation so canvas
// pixels map 1:1 to screen pixels. Must run before the first window exists.
func EnableDPIAwareness() error {
	if err := procSetProcessDPIAware.Find(); err != nil {
		return err
	}
	r1, _, err := procSetProcessDPIAware.Call()
	if r1 == 0 {
		return err
	}
	return nil
}
