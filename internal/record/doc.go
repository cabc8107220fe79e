// Package record defines the immutable value records produced by the
// extraction core: clubs and societies, their scheduled events, activities
// and fixtures, committee members, awards, links and info pages.
//
// Records are built fresh per extraction call and hold no reference back
// into the source markup. Optional fields are pointers so that a missing
// value serializes as JSON null rather than a zero value.
package record
