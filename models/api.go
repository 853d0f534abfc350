package models

import "encoding/json"

// Envelope is the response shape shared by all backend endpoints:
// {statusCode, message, success, data}. Data stays raw until the caller
// decodes it into the expected type.
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
}
