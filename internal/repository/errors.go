// Package repository contains the raw-SQL persistence layer. Sentinel
// errors defined here let handlers distinguish failure classes without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique index on
// users.email. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidRefresh is returned when a refresh token hash is unknown,
// expired or revoked. Handlers translate this into HTTP 401.
var ErrInvalidRefresh = errors.New("invalid refresh token")
