// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline test doubles in individual test files, tests
// across the module share these implementations so that call tracking and
// canned failures behave the same everywhere.
//
// Usage:
//
//	import "github.com/phrazzld/nursenote-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := mocks.NewMockGeneratorWithText("S（主観）:\n...")
//	    svc, _ := service.NewNoteService(gen, nil)
//	    // ...
//	    assert.Equal(t, 1, gen.CallCount())
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
