// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Config amends the behavior of NewHeap. The compatibility promise is
// the same as other struct types in this package's ancestry (see
// dbm.Options): new fields may be added, but client code should always
// assign by field name.
type Config struct {
	// ChunkBytes is the unit the arena grows by whenever findFit
	// misses. It MUST be a multiple of 8. Zero means DefaultConfig's
	// value (4096).
	ChunkBytes int

	// MinBlockBytes is the smallest block place will ever create by
	// splitting, and the size rounded-up requests below the payload
	// threshold receive. Zero means DefaultConfig's value (16).
	MinBlockBytes int
}

// DefaultConfig returns the constants that fix the on-arena layout: the
// chunk size a miss grows the arena by, and the smallest block place
// will ever create.
func DefaultConfig() Config {
	return Config{
		ChunkBytes:    chunkSize,
		MinBlockBytes: minBlock,
	}
}

func (c Config) normalize() Config {
	if c.ChunkBytes <= 0 {
		c.ChunkBytes = chunkSize
	} else {
		c.ChunkBytes = roundUp8(c.ChunkBytes)
	}
	if c.MinBlockBytes <= 0 {
		c.MinBlockBytes = minBlock
	} else {
		c.MinBlockBytes = roundUp8(c.MinBlockBytes)
	}
	return c
}
