//go:build !windows
// +build !windows

package cli

// EnableANSI is a no-op outside Windows; VT sequences work natively.
func EnableANSI() {}
