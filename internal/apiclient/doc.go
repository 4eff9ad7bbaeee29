// Package apiclient wraps the JSON conventions of internal/api behind
// Get/Post/Put/Delete methods, so integration tests and operator tooling can
// exercise a running ragedbd the same way any HTTP caller would, rather than
// reaching into shardservice directly.
package apiclient
