// Package migrations embarque les migrations SQL exécutées par goose au démarrage.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
