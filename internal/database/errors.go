package database

import "errors"

// ErrDuplicate is returned when an insert would violate a uniqueness
// constraint (one draw per date, one vote per word, one seen row per word).
// Repositories detect it by re-reading after a failed insert rather than by
// inspecting driver-specific error codes, so SQLite and PostgreSQL behave
// identically.
var ErrDuplicate = errors.New("record already exists")
