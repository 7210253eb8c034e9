package pipeline

import (
	"fmt"
	"strconv"

	"collector/internal/dto"
)

// RowSchemaVersion identifies the column contract the assembler targets. The
// assembler knows exactly this one version; migrating the sheet means bumping
// it together with the column list below.
const RowSchemaVersion = 1

// NumImageSlots is the number of image columns in schema v1.
const NumImageSlots = 4

// Cell values for absent data. The column count is fixed, so an absent value
// always renders as one of these, never as a dropped cell. The sentinel keeps
// "missing" distinguishable from a legitimately empty string.
const (
	sentinel  = "N/A"
	emptyCell = ""
)

// AssembleRow normalizes one submission into the schema v1 row:
// capturedAt, networkAddress, userAgent, brand, model, gpuVendor, gpuRenderer,
// battery, charging, location, image slots 1..4. Pure transformation; every
// default lives here and nowhere else.
func AssembleRow(sub *dto.TelemetrySubmission, identity dto.DeviceIdentity, refs []ImageReference) []string {
	row := make([]string, 0, 10+NumImageSlots)
	row = append(row,
		sub.CapturedAt,
		sub.NetworkAddress,
		userAgentCell(sub.ClientHints),
		identity.Brand,
		identity.Model,
	)
	if sub.GPUInfo != nil {
		row = append(row, orSentinel(sub.GPUInfo.Vendor), orSentinel(sub.GPUInfo.Renderer))
	} else {
		row = append(row, sentinel, sentinel)
	}
	row = append(row,
		batteryCell(sub.BatteryState),
		chargingCell(sub.BatteryState),
		locationCell(sub.Geolocation),
	)
	for slot := 0; slot < NumImageSlots; slot++ {
		row = append(row, imageCell(refs, slot))
	}
	return row
}

func userAgentCell(hints *dto.ClientHints) string {
	if hints == nil || hints.UserAgent == "" {
		return sentinel
	}
	return hints.UserAgent
}

func orSentinel(s string) string {
	if s == "" {
		return sentinel
	}
	return s
}

// batteryCell renders "42%"; a missing battery state defaults the level to 0.
func batteryCell(b *dto.Battery) string {
	if b == nil {
		return "0%"
	}
	return strconv.FormatFloat(b.LevelPercent, 'f', -1, 64) + "%"
}

// chargingCell stays empty when the battery state was never reported, keeping
// "unreported" distinguishable from the 0 the level cell defaults to.
func chargingCell(b *dto.Battery) string {
	if b == nil {
		return emptyCell
	}
	if b.Charging {
		return "yes"
	}
	return "no"
}

func locationCell(g *dto.Geolocation) string {
	if g == nil {
		return sentinel
	}
	return fmt.Sprintf("%v, %v", g.Lat, g.Lon)
}

// imageCell renders the slot's locator, or the empty placeholder when the
// slot was never supplied or its image degraded.
func imageCell(refs []ImageReference, slot int) string {
	if slot < len(refs) {
		return refs[slot].Locator
	}
	return emptyCell
}
