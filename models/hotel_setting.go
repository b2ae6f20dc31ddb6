package models

// HotelSetting is the hotel's public profile shown in the footer and on the
// contact page.
type HotelSetting struct {
	Name    string   `json:"name"`
	Tagline string   `json:"tagline"`
	Address []string `json:"address"`
	Phone   []string `json:"phone"`
	Email   []string `json:"email"`
	Hours   []string `json:"hours"`
	Website string   `json:"website"`
}
