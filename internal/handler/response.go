package handler

// Envelope is the uniform response body returned by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success wraps data in a successful envelope.
func Success(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Failure wraps an error message in a failed envelope. Data stays null.
func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
