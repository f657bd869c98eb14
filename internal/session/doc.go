// Package session implements the server-side session protocol: opaque token
// generation, durable shared storage with sliding TTL, and deletion on
// logout. The Redis-backed store is the production implementation; the
// in-memory store serves development and tests.
package session
