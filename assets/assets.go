// Package assets embeds the static data files shipped with the game.
package assets

import "embed"

//go:embed catalog/*.yaml
var Catalog embed.FS
