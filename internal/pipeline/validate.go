package pipeline

import "collector/internal/dto"

// Validate checks presence and shape of the required submission fields and
// returns the submission unchanged. It makes no remote calls and fails with
// the first offending field.
func Validate(sub *dto.TelemetrySubmission) (*dto.TelemetrySubmission, error) {
	if sub == nil {
		return nil, &InvalidPayloadError{Field: "body", Reason: "must be present"}
	}
	if sub.CapturedAt == "" {
		return nil, &InvalidPayloadError{Field: "ts", Reason: "must be a non-empty timestamp"}
	}
	if sub.NetworkAddress == "" {
		return nil, &InvalidPayloadError{Field: "networkAddress", Reason: "was not derived from the request"}
	}
	// A hints object without a user agent signals a malformed client. A
	// submission carrying no hints at all is fine and gets the sentinel
	// downstream.
	if sub.ClientHints != nil && sub.ClientHints.UserAgent == "" {
		return nil, &InvalidPayloadError{Field: "hints.ua", Reason: "must be non-empty when hints are sent"}
	}
	return sub, nil
}
