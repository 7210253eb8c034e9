package pipeline

import (
	"errors"
	"testing"

	"collector/internal/dto"
)

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name string
		sub  *dto.TelemetrySubmission
	}{
		{"minimal", &dto.TelemetrySubmission{CapturedAt: "T1", NetworkAddress: "1.2.3.4"}},
		{"with hints", &dto.TelemetrySubmission{CapturedAt: "T1", NetworkAddress: "1.2.3.4", ClientHints: &dto.ClientHints{UserAgent: "Mozilla/5.0"}}},
		{"no hints at all is allowed", &dto.TelemetrySubmission{CapturedAt: "T1", NetworkAddress: "1.2.3.4", BatteryState: &dto.Battery{LevelPercent: 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.sub)
			if err != nil {
				t.Fatalf("Validate() error = %v, expected success", err)
			}
			if got != tt.sub {
				t.Error("Validate() should return the submission unchanged")
			}
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		sub   *dto.TelemetrySubmission
		field string
	}{
		{"nil submission", nil, "body"},
		{"missing timestamp", &dto.TelemetrySubmission{NetworkAddress: "1.2.3.4"}, "ts"},
		{"missing network address", &dto.TelemetrySubmission{CapturedAt: "T1"}, "networkAddress"},
		{"hints without user agent", &dto.TelemetrySubmission{CapturedAt: "T1", NetworkAddress: "1.2.3.4", ClientHints: &dto.ClientHints{Platform: "macOS"}}, "hints.ua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.sub)
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			var invalid *InvalidPayloadError
			if !errors.As(err, &invalid) {
				t.Fatalf("Validate() error = %T, expected *InvalidPayloadError", err)
			}
			if invalid.Field != tt.field {
				t.Errorf("Validate() named field %q, expected %q", invalid.Field, tt.field)
			}
		})
	}
}
