package models

// User as returned by the backend. The password never comes back.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// RegisterForm is sent as multipart. Password is a byte slice so the caller
// can wipe it once the request has been built; ProfilePic is a local path.
type RegisterForm struct {
	Name       string `schema:"name"`
	Email      string `schema:"email"`
	Password   []byte `schema:"-"`
	ProfilePic string `schema:"-"`
}

// ProfileForm updates name and email, optionally with a new picture.
type ProfileForm struct {
	Name    string `schema:"name"`
	Email   string `schema:"email"`
	Picture string `schema:"-"`
}

// LoginResult is the /login reply.
type LoginResult struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId"`
	Message string `json:"message,omitempty"`
}

// StatusResult is the reply of the verify, OTP and password endpoints.
type StatusResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
