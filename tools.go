//go:build tools

// Package tools pins the development tools used by taskrun's lint, test and
// release workflows so `go run` resolves them to the versions in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/goreleaser/goreleaser"
	_ "golang.org/x/tools/cmd/cover"
	_ "golang.org/x/tools/cmd/goimports"
)
