package domain

// Worker represents a staff member who fulfills one reservation per window
type Worker struct {
	ID       int64
	SalonID  int64
	FullName string
	Active   bool
}
