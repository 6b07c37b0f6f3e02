package types

// LeadResponse is the body of every answer from the lead endpoint.
type LeadResponse struct {
	OK        bool   `json:"ok"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Succeeded builds the success body.
func Succeeded(messageID string) LeadResponse {
	return LeadResponse{OK: true, MessageID: messageID}
}

// Failed builds the failure body.
func Failed(message string) LeadResponse {
	return LeadResponse{OK: false, Error: message}
}
