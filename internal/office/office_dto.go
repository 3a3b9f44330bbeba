package office

import "time"

const DefaultName = "Kantor Utama"

type UpdateOfficeRequest struct {
	Latitude          *float64 `json:"latitude" binding:"required"`
	Longitude         *float64 `json:"longitude" binding:"required"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	MaxDistanceMeters float64  `json:"max_distance"`
}

type OfficeLocationResponse struct {
	ID                string     `json:"id,omitempty"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	Name              string     `json:"name"`
	Address           string     `json:"address,omitempty"`
	MaxDistanceMeters float64    `json:"max_distance"`
	IsDefault         bool       `json:"is_default"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}
