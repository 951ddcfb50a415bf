//go:build !windows

// Package platform holds OS-specific process setup.
package platform

// EnableDPIAwareness is a no-op outside Windows.
func EnableDPIAwareness() error { return nil }
