package models

import "time"

// Review is a visitor-submitted review. Only approved reviews reach the
// public carousel; Approved is flipped only by explicit admin action.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Review    string    `json:"review"`
	Rating    int       `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
