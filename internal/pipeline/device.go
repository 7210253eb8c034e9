package pipeline

import (
	"strings"

	"collector/internal/dto"
)

// deviceRule maps a lower-case substring to a brand/model guess.
type deviceRule struct {
	substr string
	brand  string
	model  string
}

const unknown = "Unknown"

// Ordered; first match wins. Membership is tuning, order is contract: the
// specific families (sm-, pixel) must sit above the generic catch-alls.
var userAgentRules = []deviceRule{
	{"iphone", "Apple", "iPhone"},
	{"ipad", "Apple", "iPad"},
	{"macintosh", "Apple", "Mac"},
	{"pixel", "Google", "Pixel"},
	{"sm-", "Samsung", "Galaxy"},
	{"samsung", "Samsung", "Galaxy"},
	{"oneplus", "OnePlus", "OnePlus"},
	{"redmi", "Xiaomi", "Redmi"},
	{"xiaomi", "Xiaomi", "Xiaomi"},
	{"huawei", "Huawei", "Huawei"},
	{"cros", "Google", "Chromebook"},
	{"windows nt", "Microsoft", "Windows PC"},
	{"android", "Android", "Generic"},
}

// gpuRules are consulted only when no user-agent rule matched; the vendor and
// renderer strings are inspected together.
var gpuRules = []deviceRule{
	{"apple", "Apple", unknown},
	{"adreno", "Android", "Snapdragon device"},
	{"mali", "Android", "Mali device"},
	{"geforce", "Desktop", "NVIDIA GPU"},
	{"nvidia", "Desktop", "NVIDIA GPU"},
	{"radeon", "Desktop", "AMD GPU"},
	{"intel", "Desktop", "Intel GPU"},
}

// InferDevice maps fingerprint hints to a best-guess identity. It is a total
// function: no rule matching is itself a defined outcome, {Unknown, Unknown}.
func InferDevice(userAgent string, gpu *dto.GPUInfo) dto.DeviceIdentity {
	ua := strings.ToLower(userAgent)
	for _, rule := range userAgentRules {
		if ua != "" && strings.Contains(ua, rule.substr) {
			return dto.DeviceIdentity{Brand: rule.brand, Model: rule.model}
		}
	}

	if gpu != nil {
		desc := strings.ToLower(gpu.Vendor + " " + gpu.Renderer)
		for _, rule := range gpuRules {
			if strings.Contains(desc, rule.substr) {
				return dto.DeviceIdentity{Brand: rule.brand, Model: rule.model}
			}
		}
	}

	return dto.DeviceIdentity{Brand: unknown, Model: unknown}
}
