package importer

import "errors"

// ErrVerificationFailed wraps a non-empty Report.Failed from pieceverify;
// use Result.Failed for the specific paths.
var ErrVerificationFailed = errors.New("piece verification failed")
