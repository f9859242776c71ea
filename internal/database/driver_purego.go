//go:build purego

package database

import _ "modernc.org/sqlite"

const driverName = "sqlite"
