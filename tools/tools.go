//go:build tools

// Package tools pins the versions of the development tools.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
