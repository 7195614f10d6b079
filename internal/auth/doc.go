// Package auth manages participant accounts and browser sessions.
//
// Accounts are identified by email and protected by a bcrypt password hash.
// A successful registration or login yields a Session carrying a signed
// HS256 token; the web layer stores that token in an HttpOnly cookie and the
// JSON API returns it in the response body.
package auth
