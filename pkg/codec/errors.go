package codec

// Errors
var (
	ErrUnavailable       = &ArchiveError{"archive stream is not readable"}
	ErrBadMagic          = &ArchiveError{"archive does not start with the expected marker"}
	ErrSignatureMismatch = &ArchiveError{"state space signatures do not match"}
	ErrTruncated         = &ArchiveError{"archive is shorter than its header declares"}
)

// ArchiveError represents a structural problem with an archive stream
type ArchiveError struct {
	Message string
}

func (e *ArchiveError) Error() string {
	return e.Message
}
