//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates *_mock_test.go (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod for ad-hoc
//   migration authoring; the server and cmd/migrate apply migrations in-process.
