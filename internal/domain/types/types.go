// Package types contains common types used across the application
package types

// Shot is one recorded shot as exposed to clients.
type Shot struct {
	Index  int     `json:"shot"`
	Score  int     `json:"score"`
	XMM    float64 `json:"x_mm"`
	YMM    float64 `json:"y_mm"`
	PixelX float64 `json:"pixel_x"`
	PixelY float64 `json:"pixel_y"`
}

// TargetSummary describes one selectable target.
type TargetSummary struct {
	Name          string  `json:"name"`
	RingCount     int     `json:"ring_count"`
	MaxDiameterMM float64 `json:"max_diameter_mm"`
}

// SessionState is the client-visible session snapshot.
type SessionState struct {
	SessionID    string  `json:"session_id"`
	Target       string  `json:"target"`
	CanvasSizePX float64 `json:"canvas_size_px"`
	ShotCount    int     `json:"shot_count"`
}

// RenderRing is one drawable ring: pixel geometry plus presentation hints.
// Rings arrive in descending diameter order so inner rings draw on top.
type RenderRing struct {
	Label       string  `json:"label"`
	RadiusPX    float64 `json:"radius_px"`
	Color       string  `json:"color"`
	Points      int     `json:"points"`
	LabelHidden bool    `json:"label_hidden"`
}

// Marker is a shot position in canvas pixels.
type Marker struct {
	Index  int     `json:"shot"`
	Score  int     `json:"score"`
	PixelX float64 `json:"pixel_x"`
	PixelY float64 `json:"pixel_y"`
}

// RenderDescription carries everything the UI shell needs to draw the
// target and its logged shots.
type RenderDescription struct {
	Target       string       `json:"target"`
	CanvasSizePX float64      `json:"canvas_size_px"`
	CenterPX     float64      `json:"center_px"`
	Rings        []RenderRing `json:"rings"`
	Markers      []Marker     `json:"markers"`
}
