// Package bundle implements the embedding pipeline: it prepares each
// registered package (installing it via npm when absent), rewrites its
// source into plain variable declarations, appends the result to the
// bundle file after the magic marker line, and copies each package's
// license alongside the output.
//
// Registry entries are assumed to yield distinct safe names. Two
// packages mapping to the same safe name would declare the same
// variable twice in the bundle and overwrite each other's license
// copy; this case is left undefined.
package bundle
