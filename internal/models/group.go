package models

// Group represents a dining group that splits bills together.
// Members join by entering the group's join code.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Code is the 6-digit join code shared with other diners.
	Code string

	// Name is the display name (e.g. "Friday Dinner").
	Name string

	// Description is optional free text.
	Description string

	// CreatedBy is the user ID of the group creator.
	CreatedBy string

	// Members are the participants currently in the group.
	Members []Participant

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
