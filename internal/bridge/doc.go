// Package bridge exposes the app's commands to a web front-end over local
// HTTP.
//
// A front-end invokes a command with POST /invoke/<name>, sending the
// command arguments (if any) as a JSON body. The response body is the
// command result encoded as JSON, or {"error": "..."} with a non-2xx status.
package bridge
