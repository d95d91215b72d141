package model

// QiblaReading is an immutable bearing/distance answer for one coordinate
// pair. Bearing is degrees from true north in [0,360), distance in km;
// both are rounded to the nearest integer.
type QiblaReading struct {
	BearingDeg float64 `json:"bearing_deg"`
	DistanceKm float64 `json:"distance_km"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// CompassState is the fused view rendered by the qibla page. DialRotation
// turns the dial graphic under a fixed pointer; PointerRotation turns a
// needle over a fixed dial. Both are derived from the same heading sample
// and are never persisted. Available is false when the device has no
// orientation sensor or its permission was denied; a zero heading must not
// be mistaken for "pointing north" in that case.
type CompassState struct {
	RawHeadingDeg        float64 `json:"raw_heading_deg"`
	CalibrationOffsetDeg float64 `json:"calibration_offset_deg"`
	DialRotationDeg      float64 `json:"dial_rotation_deg"`
	PointerRotationDeg   float64 `json:"pointer_rotation_deg"`
	Available            bool    `json:"available"`
}
