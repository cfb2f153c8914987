package sentinel

import "errors"

// ErrNotFound is returned (optionally wrapped) by stores when the requested
// entity does not exist, so services can translate the miss into a domain
// error. For validation errors (bad input, missing fields), use
// pkg/domain-errors.
var ErrNotFound = errors.New("not found")
