// Package common contains shared constants and sentinel errors used across
// MediBook components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// RefreshTokenKeyPrefix namespaces refresh-token keys in the key-value cache.
// The full key is the prefix followed by the account id, so lookups never
// require a scan.
const RefreshTokenKeyPrefix = "refresh:"
