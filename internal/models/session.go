package models

// Session is the persisted authentication state of the console.
// Authenticated is expected to be true only when Token is set, but the
// store does not enforce it; login/logout flows keep the fields in step.
type Session struct {
	Authenticated bool    `json:"authenticated"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Token         *string `json:"token"`
}
