package room

import "errors"

// ErrCreationExhausted is returned when every generated code collided with an
// existing room. With the slug space in use this effectively never happens;
// it guards against a pathological or near-full code space.
var ErrCreationExhausted = errors.New("room creation exhausted: no free code found")

// ErrEmptyName rejects creation requests without a display name.
var ErrEmptyName = errors.New("room name must not be empty")
