// Package session holds the per-user server-side state: the remote auth
// token and role obtained at sign-in, the session's lifetime, and the
// checkout workflow the user is currently walking through.
//
// Sessions are created by the sign-in use case and reaped by the cleanup
// job once expired. All access goes through the session repository port,
// which serializes mutation per session; the aggregate itself is not safe
// for concurrent use.
package session
