// Package config loads, merges, and validates configuration for the
// vault-sync server and client binaries.
//
// Values are assembled from several sources; later sources override earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the server configuration,
// [GetClientConfig] the client one.
package config
