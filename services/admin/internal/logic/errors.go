package logic

import "errors"

// ErrInvalidRequest covers malformed requests that never reach the engine
// (nil body, empty path params, failed envelope gate).
var ErrInvalidRequest = errors.New("invalid request")
