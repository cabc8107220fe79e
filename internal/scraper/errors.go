package scraper

import "fmt"

// StructuralError reports a violated template assumption: an expected
// container, row or field is missing or not of the expected shape.
type StructuralError struct {
	Resource string
	Detail   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural fault in %s: %s", e.Resource, e.Detail)
}

func structural(resource, format string, args ...any) error {
	return &StructuralError{Resource: resource, Detail: fmt.Sprintf(format, args...)}
}

// ListingError reports a directory anchor whose href matches the listing
// pattern but yields no identifier segment.
type ListingError struct {
	Name string
	Href string
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("no id in listing link %q for %q", e.Href, e.Name)
}
