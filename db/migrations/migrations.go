// Package migrations ships the SQL schema with the binary.
package migrations

import "embed"

// FS holds the numbered up/down migration pairs read by internal/db.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest migration in FS. Bump it together with every new
// migration pair.
const Version uint = 1
