//go:build !purego

package database

import _ "github.com/mattn/go-sqlite3"

const driverName = "sqlite3"
