package domain

import "errors"

// ErrArcNotFound is returned when an arc ID is not in the registry.
var ErrArcNotFound = errors.New("arc not found")

// ErrDatasetNotFound is returned when an industry has no registered dataset.
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrPrefNotFound is returned by prefs stores for a missing key.
var ErrPrefNotFound = errors.New("preference not found")
