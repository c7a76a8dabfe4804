// Package shared holds utilities used across the datawash codebase that do
// not belong to any specific domain package.
//
// # Structure
//
// The package is organized into the following components:
//
// - testutil: Testing utilities for capturing and asserting on structured logs
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helpers with no domain-specific logic
//
// It should NOT contain:
//
// 1. Business logic or domain-specific code
// 2. Circular dependencies with other internal packages
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//
//	    svc := NewService(logger)
//	    svc.Do(context.Background())
//
//	    handler.AssertLogContains(t, slog.LevelInfo, "work complete")
//	}
package shared
