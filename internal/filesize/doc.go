// Package filesize collects file sizes under a directory and reports them.
//
// It walks a directory tree (serially with an explicit stack, or in parallel
// using fastwalk), records the size of every regular file keyed by its path
// relative to the scan root, and renders a sorted, optionally truncated
// report using binary (1024-based) unit prefixes.
package filesize
