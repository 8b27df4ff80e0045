package menudata

import _ "embed"

// Default holds the built-in fourteen-day rotation.
//
//go:embed menu.json
var Default []byte
