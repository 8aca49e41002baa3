package player

import "errors"

// Ingestion failure kinds. Adapters attach them as marks so errors.Is keeps
// working through any wrapping.
var (
	ErrTransport = errors.New("transport error")
	ErrParse     = errors.New("parse error")
)
