package user

// User represents a registered customer, optionally linked to a school.
type User struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email,omitempty"`
	SchoolName *string `json:"school_name,omitempty"`
}
