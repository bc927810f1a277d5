// Package middleearth embeds the default world played when no world
// directory is given.
package middleearth

import "embed"

// FS holds the world's Lua files at its root.
//
//go:embed *.lua
var FS embed.FS
