// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests import the
// standardized mocks from here so that call tracking and canned responses
// behave the same everywhere.
//
// Usage:
//
//	import "github.com/phrazzld/teachkit/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    client := mocks.NewMockModelClientWithText("# Lesson")
//	    svc, _ := generation.NewService(client, slog.Default(), generation.Options{})
//	    // ...
//	    assert.Equal(t, 1, client.Calls().Text)
//	}
package mocks
