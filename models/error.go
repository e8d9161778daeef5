package models

// ErrorResponse is the JSON body of every failed /api request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
