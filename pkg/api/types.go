package api

// ServerConfig holds configuration for the inspection server
type ServerConfig struct {
	DataDir string // Directory holding archive files
	Bind    string // Bind address
	Port    int    // Listen port
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Space  string `json:"space"`
}

// ArchiveSummary describes one archive file on disk
type ArchiveSummary struct {
	Name      string `json:"name"`
	SizeBytes int64  `json:"size_bytes"`
}

// ArchiveInfo is the decoded header of one archive
type ArchiveInfo struct {
	Name         string  `json:"name"`
	Signature    []int32 `json:"signature"`
	StateCount   uint64  `json:"state_count"`
	MetadataSize uint64  `json:"metadata_size"`
	SizeBytes    int64   `json:"size_bytes"`
}

// ErrorResponse carries an error message back to the client
type ErrorResponse struct {
	Error string `json:"error"`
}
