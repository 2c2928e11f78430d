// Package version reports build information for the client and CLI.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/bitly/version.Version=1.0.0" ./cmd/bitly
package version
