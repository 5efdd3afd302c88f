package domain

import "time"

// ContactStatus represents the processing state of a contact message
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// ContactMessage represents a message sent through the contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}

// Subscriber represents a newsletter subscription
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
