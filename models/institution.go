package models

import "time"

// Institution is a campus tenant. Registration emails must match the
// institution's emailPattern.
type Institution struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Shortcode    string    `bson:"shortcode" json:"shortcode"`
	Placeholder  string    `bson:"placeholder" json:"placeholder"` // e.g. "123456789@live.unilag.edu.ng"
	EmailPattern string    `bson:"emailPattern" json:"emailPattern"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
