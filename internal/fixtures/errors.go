package fixtures

import "errors"

// ErrNilMutation is returned by Build when one of the given Mutations is
// nil, mirroring builder.ErrConstructFailed's role for a nil Constructor.
var ErrNilMutation = errors.New("fixtures: nil mutation")
