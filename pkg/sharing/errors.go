package sharing

import "errors"

// ErrInsufficient is returned when reconstruction is attempted with fewer
// shares than the scheme's threshold requires.
var ErrInsufficient = errors.New("sharing: insufficient shares to reconstruct")

// ErrInconsistent is returned when two windows of shares of the same
// sharing reconstruct to different secrets, indicating at least one
// corrupted or malicious share.
var ErrInconsistent = errors.New("sharing: inconsistent shares")

// ErrDegreeOverflow is returned when a local multiplication would produce a
// share polynomial of degree >= N, past the point the party set can still
// reconstruct it by interpolation.
var ErrDegreeOverflow = errors.New("sharing: degree overflow")

// ErrSchemeMismatch is returned when an operation is attempted across
// ShareSets from different schemes or incompatible party counts.
var ErrSchemeMismatch = errors.New("sharing: scheme mismatch")
