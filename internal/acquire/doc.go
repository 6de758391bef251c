// Package acquire obtains today's (name, level) snapshot.
//
// The production source is an external fetcher binary that prints a JSON
// array of {"name": ..., "level": ...} objects on stdout. ExecFetcher runs
// it; FileFetcher reads the same format from a file or stdin; FetcherFunc
// adapts a plain function for tests.
//
// Every failure is an *Error with one of three kinds:
//   - ACQUISITION_UNAVAILABLE: the fetcher binary or snapshot file is missing
//   - ACQUISITION_FAILED: the fetcher exited non-zero (stdout/stderr kept)
//   - ACQUISITION_MALFORMED: the output is not a JSON array (raw text kept)
package acquire
