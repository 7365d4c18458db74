package parts

import (
	_ "embed"
)

//go:embed assets/styles.css
var stylesCSS string

// GetCriticalCSS returns the storefront stylesheet inlined into every page.
func GetCriticalCSS() string {
	return stylesCSS
}
