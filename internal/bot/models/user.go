package models

// User is a registered bot user. UserID is the external numeric identity
// assigned by the messaging platform; Username is an optional display name
// and may be empty (stored as NULL).
type User struct {
	ID       int64
	UserID   int64
	Username string
}
