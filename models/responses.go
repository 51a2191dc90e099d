package models

// MessageResponse is the generic JSON body used for both successful
// acknowledgements and error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
