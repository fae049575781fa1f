// Package banner renders the CLI startup banner.
package banner

import "fmt"

const art = `
  ┌─┐┌┬┐┌─┐┌─┐┬  ┬┌─┐┌┬┐
  └─┐ │ │ │├─┘│  │└─┐ │
  └─┘ ┴ └─┘┴  ┴─┘┴└─┘ ┴`

// Banner returns the startup banner shown before any log output.
func Banner(version string) string {
	return fmt.Sprintf("%s  v%s\n\n", art, version)
}
