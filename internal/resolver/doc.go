// Package resolver turns an ambiguous path or glob pattern into a concrete
// set of data files with a target extension.
//
// Resolution runs a fixed chain of five strategies, ordered from the most
// literal interpretation of the input to the most permissive. The chain
// stops at the first strategy whose candidates survive materialization
// (extension filter, regular-file check, symlink-resolved deduplication,
// lexicographic sort). When no strategy produces matches, a bounded walk
// from the nearest existing ancestor directory produces a DiagnosticReport
// explaining the failure instead of an error.
//
// # Usage
//
//	result, err := resolver.Resolve(ctx, "/data/*.h5", resolver.Options{})
//	if err != nil {
//	    // blank input, bad extension, no existing ancestor, or cancellation
//	}
//	if result.Report != nil {
//	    // nothing matched; render the report
//	}
//	for _, path := range result.Matches {
//	    // absolute, symlink-resolved, sorted
//	}
//
// The resolver is synchronous and holds no state across calls. Callers that
// need responsiveness run Resolve on their own goroutine and observe
// progress through Options.Progress; cancellation is checked between
// strategies and between directory visits of the diagnostic walk.
package resolver
