package models

import (
	"github.com/krysopath/pydis/codec"
)

// ClimateSample is the single reading of the climate sensor.
type ClimateSample struct {
	Timestamp              float64 `json:"timestamp"`
	Temperature            float64 `json:"temperature"`
	Humidity               float64 `json:"humidity"`
	DewPointCelsius        float64 `json:"dew_point_celsius,omitempty"`
	SteamPressure          float64 `json:"steam_pressure_hPa,omitempty"`
	SteamPressureSaturated float64 `json:"steampressure_saturated_hPa,omitempty"`
	Moisture               float64 `json:"moisture_gpm3,omitempty"`
	Extra                  string  `json:"extra,omitempty"`
}

// SentinelSample is the single reading of the host health sensor. The sizes are in megabytes.
type SentinelSample struct {
	Timestamp   float64 `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	DiskTotal   float64 `json:"disk_total"`
	DiskUsed    float64 `json:"disk_used"`
	DiskFree    float64 `json:"disk_free"`
	FreqCurrent float64 `json:"freq_current,omitempty"`
	FreqMin     float64 `json:"freq_min,omitempty"`
	FreqMax     float64 `json:"freq_max,omitempty"`
	TotalRAM    float64 `json:"total_ram"`
	AvailRAM    float64 `json:"avail_ram"`
	PercentRAM  float64 `json:"percent_ram"`
	UsedRAM     float64 `json:"used_ram"`
	FreeRAM     float64 `json:"free_ram"`
	ActiveRAM   float64 `json:"active_ram,omitempty"`
	InactiveRAM float64 `json:"inactive_ram,omitempty"`
	Buffer      float64 `json:"buffer,omitempty"`
	Cached      float64 `json:"cached,omitempty"`
	Shared      float64 `json:"shared,omitempty"`
	Extra       string  `json:"extra,omitempty"`
}

var (
	// ClimateSampleType is the field type of the climate samples.
	ClimateSampleType = codec.JSON[ClimateSample]("climate_sample")
	// SentinelSampleType is the field type of the sentinel samples.
	SentinelSampleType = codec.JSON[SentinelSample]("sentinel_sample")
)
