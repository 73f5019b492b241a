package entity

import "time"

// Course is the aggregate root for the catalog domain.
// EnrolledStudents is a membership set of user IDs: no duplicates,
// order irrelevant. No reverse index from user to courses exists;
// "my courses" is answered by scanning the catalog.
type Course struct {
	ID               string
	Title            string
	Description      string
	Instructor       string
	EnrolledStudents []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasStudent reports whether the given user ID is in the enrolled set.
func (c *Course) HasStudent(userID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == userID {
			return true
		}
	}
	return false
}
