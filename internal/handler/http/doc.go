// Package http is the HTTP transport of the sync API.
//
// It wires the chi router, the account and commit handlers, and the
// middleware chain: request tracing, access logging, gzip, bearer-token
// authentication, and body integrity checking. Requests pass through the
// chain before reaching the service layer.
package http
