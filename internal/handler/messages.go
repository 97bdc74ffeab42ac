package handler

import "time"

// Messages shown to visitors
const (
	// Intake form messages
	MSG_INVALID_VIBE         = "Please choose one of the three options to continue."
	MSG_INCOMPLETE_DETAILS   = "Please fill in your name, email and project brief before submitting."
	MSG_SUBMISSION_IN_FLIGHT = "Your project is already being sent. Hang tight."
	MSG_FORM_ERROR           = "Something went wrong reading the form. Please try again."

	// OG image
	MSG_OG_FAILED = "Failed to generate image"
)

// Timeout constants
const (
	TIMEOUT_NOTIFY         = 10 * time.Second
	TIMEOUT_READ_HEADER    = 5 * time.Second
	TIMEOUT_WRITE          = 30 * time.Second
	TIMEOUT_SHUTDOWN       = 15 * time.Second
	TIMEOUT_SESSION_COOKIE = 24 * time.Hour
)
