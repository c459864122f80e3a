// Package auth provides a minimal JWT-based admin authentication context,
// trimmed to what protects the admin-only bulk-validation endpoints.
// This file defines the public API of the auth bounded context.
package auth

// Claims is the minimal identity carried by an issued access token.
type Claims struct {
	Subject string
	Roles   []string
}
