//go:build tools
// +build tools

package tools

// Pins the versions of the code generators and dev tools in go.mod:
// sqlc (internal/database/generated), swag (docs), mockery (internal/mocks),
// goose (migrations), benchstat (benchmarks) and golangci-lint.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
