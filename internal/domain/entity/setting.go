// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// SettingStartingBalance is the key of the starting-balance setting the
// projection window is seeded from.
const SettingStartingBalance = "starting_balance"

// Setting represents a key/value configuration row.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
