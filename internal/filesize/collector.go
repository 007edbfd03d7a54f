package filesize

import (
	"sync"
	"time"
)

// Sizes maps a file path, relative to the scan root and in slash form, to its size in bytes.
type Sizes map[string]int64

// Result holds the outcome of a directory walk.
type Result struct {
	// Sizes contains one entry per regular file found.
	Sizes Sizes
	// TotalBytes is the cumulative size of all recorded files.
	TotalBytes int64
	// Errors is the number of entries skipped because they could not be read.
	Errors int64
	// Elapsed is the time taken by the walk.
	Elapsed time.Duration
}

// Options configures a directory walk.
type Options struct {
	// Path is the scan root. Defaults to the current directory.
	Path string
	// Excludes contains regex patterns matched against relative slash paths.
	Excludes []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// Parallel selects the concurrent fastwalk-based walker.
	Parallel bool
	// Strict turns unreadable descendants into a fatal error instead of a warning.
	Strict bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// collector aggregates file sizes. The parallel walker calls it from several
// goroutines, and the progress reporter reads its counters concurrently.
type collector struct {
	mu         sync.Mutex
	sizes      Sizes
	fileCount  int64
	totalBytes int64
	errorCount int64
}

func newCollector() *collector {
	return &collector{sizes: make(Sizes)}
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount++
}

func (c *collector) add(path string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += size
	c.sizes[path] = size
}

// counters returns a consistent snapshot of the file and byte counters.
func (c *collector) counters() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// finalize hands the collected mapping over to a Result.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &Result{
		Sizes:      c.sizes,
		TotalBytes: c.totalBytes,
		Errors:     c.errorCount,
	}
}
