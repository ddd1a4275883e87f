package models

import (
	"fmt"
	"strings"
)

// Participant identifies one diner within a single settlement computation.
// The ID is opaque to the engine; the group store owns identity and lifetime.
type Participant struct {
	// ID is the opaque identifier supplied by the identity provider.
	ID string

	// Name is the display name used in summaries.
	Name string
}

// Classification tags a line item for the settlement engine.
type Classification string

const (
	// Personal items are paid solely by the participant who ordered them.
	Personal Classification = "personal"

	// Shared items are pooled and divided evenly across the whole group.
	Shared Classification = "shared"

	// Excluded items are left out of the settlement entirely (e.g. paid
	// separately) and only show up in informational totals.
	Excluded Classification = "excluded"
)

// ParseClassification converts a stored or user-supplied tag into a
// Classification. Matching is case-insensitive.
func ParseClassification(s string) (Classification, error) {
	switch Classification(strings.ToLower(s)) {
	case Personal:
		return Personal, nil
	case Shared:
		return Shared, nil
	case Excluded:
		return Excluded, nil
	}
	return "", fmt.Errorf("unknown classification %q", s)
}
