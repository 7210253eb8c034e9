package dto

// CollectResponse is returned for a submission that reached the log.
type CollectResponse struct {
	OK     bool            `json:"ok"`
	Device *DeviceIdentity `json:"device,omitempty"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeviceIdentity is the best-guess brand/model pair inferred from client hints.
type DeviceIdentity struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// SubmissionSummary is broadcast to live viewers and listed from the journal.
type SubmissionSummary struct {
	ID             string `json:"id"`
	ReceivedAt     string `json:"receivedAt"`
	CapturedAt     string `json:"capturedAt"`
	NetworkAddress string `json:"networkAddress"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	ImageCount     int    `json:"imageCount"`
	ImagesStored   int    `json:"imagesStored"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
}
