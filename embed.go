package gridiron

import "embed"

//go:embed "views"
var Views embed.FS

//go:embed "migrations"
var Migrations embed.FS
