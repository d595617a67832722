package planner

import "errors"

// ErrEmptyCategory is returned when a draw targets a category with no catalog
// entries. The shipped catalog never triggers it; it guards catalog edits.
var ErrEmptyCategory = errors.New("no dishes in category")

// ErrDayNotGenerated is returned when a slot regeneration targets a day that
// has no schedule yet. Callers are expected to generate the day first.
var ErrDayNotGenerated = errors.New("day not generated")
