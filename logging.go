package oslocale

import "github.com/rs/zerolog"

// Logger is the logger given to new detectors. It discards everything unless
// replaced, either here or per detector with WithLogger.
//
// NewDetectorWith reads Logger without locking, so replace it only during
// program initialization, before any detector is created or Current is called.
// Use WithLogger to change logging for a detector afterwards.
var Logger = zerolog.Nop()
