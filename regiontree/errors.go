package regiontree

import "errors"

// ErrBandsNotDescending indicates bands passed to Build are not sorted
// strictly top-to-bottom by TopThou, a precondition Build relies on.
var ErrBandsNotDescending = errors.New("regiontree: bands must be sorted strictly top-to-bottom by top_thou")
