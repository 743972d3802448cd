package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
	ErrorFileExists = Error("file already exists")
)

// provisioning errors
const (
	ErrRandomSource  = Error("secure random source unavailable")
	ErrInvalidLength = Error("secret length must be positive")
	ErrStatFile      = Error("could not check the file")
	ErrWriteFile     = Error("could not write the env file")
	ErrVerifyFailed  = Error("env file does not contain the generated key")
)

// config errors
const ErrInvalidConfig = Error("invalid configuration")
