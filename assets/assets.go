// Package assets embeds the default game resources.
package assets

import "embed"

// BlockTexturesDir is the directory holding block textures inside FS.
const BlockTexturesDir = "textures/blocks"

//go:embed textures/blocks/*.png
var FS embed.FS
