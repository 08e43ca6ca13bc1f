// ABOUTME: Product and version identifiers
// ABOUTME: Reported by -version and in startup logs
package version

import "fmt"

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the program name
	Product = "earfilter"

	// Manufacturer is the publisher shown with the version
	Manufacturer = "Harper Reed"
)

// String returns the version line, e.g. "earfilter 0.1.0 (Harper Reed)"
func String() string {
	return fmt.Sprintf("%s %s (%s)", Product, Version, Manufacturer)
}
