package pipeline

// DefaultChunkSize is the number of candidates evaluated per fan-out task.
const DefaultChunkSize = 512

// Config holds runtime settings for a pipeline.
type Config struct {
	// Workers bounds how many evaluation chunks run at once. Values below 1
	// are treated as 1: chunks still run on errgroup goroutines, but only one
	// goroutine at a time.
	Workers int

	// ChunkSize is the number of candidates per evaluation task.
	// Zero selects DefaultChunkSize.
	ChunkSize int
}

func (c Config) workers() int {
	return max(1, c.Workers)
}

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}
