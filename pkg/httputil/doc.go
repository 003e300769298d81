// Package httputil provides small helpers shared by every component that
// dials an external service at startup: the archive sink's MongoDB
// connection and the Redis cache backend both retry their initial
// connectivity check with exponential backoff rather than failing on the
// first transient refusal.
package httputil
