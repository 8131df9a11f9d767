package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Coordinates lưu [latitude, longitude]; trong DB là hai cột riêng
type Coordinates struct {
	Latitude  float64 `gorm:"column:latitude" json:"-"`
	Longitude float64 `gorm:"column:longitude" json:"-"`
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Latitude, c.Longitude})
}

func (c *Coordinates) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates must be [latitude, longitude], got %d values", len(pair))
	}
	c.Latitude, c.Longitude = pair[0], pair[1]
	return nil
}
