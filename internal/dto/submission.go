package dto

// TelemetrySubmission is the body of one POST /collect request. Everything
// except the capture timestamp is optional; the pipeline substitutes defined
// placeholders for absent fields. NetworkAddress is never taken from the body —
// the handler fills it in from request metadata before the pipeline runs.
type TelemetrySubmission struct {
	CapturedAt     string       `json:"ts"`
	NetworkAddress string       `json:"-"`
	ClientHints    *ClientHints `json:"hints,omitempty"`
	GPUInfo        *GPUInfo     `json:"gpu,omitempty"`
	BatteryState   *Battery     `json:"battery,omitempty"`
	Geolocation    *Geolocation `json:"location,omitempty"`
	Images         []string     `json:"burstImages,omitempty"`
}

// ClientHints carries browser-reported identity hints. A present hints object
// with an empty user agent is malformed; an absent hints object is not.
type ClientHints struct {
	UserAgent string `json:"ua"`
	Platform  string `json:"platform,omitempty"`
	Mobile    bool   `json:"mobile,omitempty"`
}

// GPUInfo is the WebGL vendor/renderer pair reported by the client.
type GPUInfo struct {
	Vendor   string `json:"vendor"`
	Renderer string `json:"renderer"`
}

type Battery struct {
	LevelPercent float64 `json:"levelPercent"`
	Charging     bool    `json:"charging"`
}

type Geolocation struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Accuracy float64 `json:"accuracy,omitempty"`
}
