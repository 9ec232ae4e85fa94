package store

const (
	// Error messages for store operations
	ErrFailedToReadFile   = "failed to read user data file"
	ErrFailedToParseFile  = "failed to parse user data file"
	ErrFailedToMarshal    = "failed to serialize user records"
	ErrFailedToWriteTemp  = "failed to write temporary data file"
	ErrFailedToRenameTemp = "failed to replace data file"
)
