package dto

// NotificationInput is an event handed to the notify module for delivery.
type NotificationInput struct {
	Kind    string
	Title   string
	Message string
}
