package request

// SetOverrideRequest is the body of PUT /rooms/:room_id/override.
// A missing custom_price decodes as 0 and is rejected as non-positive.
type SetOverrideRequest struct {
	CustomPrice float64 `json:"custom_price"`
}
