package models

// GalleryImage is one photo of the fixed gallery.
type GalleryImage struct {
	ID       int    `json:"id"`
	Src      string `json:"src"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

// GalleryCategory is one filter button of the gallery page.
type GalleryCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HeroSlide is one slide of the home page carousel.
type HeroSlide struct {
	Image    string
	Title    string
	Subtitle string
}
