package steps

import "errors"

// ErrNotConnected means the user has not completed the Google Fit OAuth
// flow (or the token expired and cannot refresh).
var ErrNotConnected = errors.New("google fit not connected")
