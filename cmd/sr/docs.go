package main

// General API documentation for swaggo. Covers the read-only debug HTTP
// surface exposed with --debug-addr. Regenerate with `swag init -g
// cmd/sr/docs.go` when the surface changes.
//
// @title           sr debug API
// @version         0.2.0
// @description     Read-only status and model listing for a running sr job.
//
// @contact.name   sr maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
