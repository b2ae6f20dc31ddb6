package config

import "hotel-site/models"

// FallbackRooms returns the curated catalog shown until the reservation
// service answers, and kept when it doesn't. Each call returns a fresh copy.
func FallbackRooms() []models.Room {
	return []models.Room{
		{
			ID:            1,
			Slug:          "standard-room",
			Name:          "Standard Room",
			Description:   "Comfortable room with a captivating city view and modern amenities.",
			PricePerNight: 120,
			RoomType:      models.RoomTypeStandard,
			ImageURL:      "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
			Amenities:     []string{"King Size Bed", "City View", "Complimentary WiFi", "Mini Bar", "Room Service"},
			Occupancy:     2,
			BedType:       "King Size Bed",
		},
		{
			ID:            2,
			Slug:          "executive-suite",
			Name:          "Executive Suite",
			Description:   "Spacious suite with a separate living area, ideal for work and relaxation.",
			PricePerNight: 250,
			RoomType:      models.RoomTypeExecutive,
			ImageURL:      "https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg?auto=compress&cs=tinysrgb&w=800",
			Amenities:     []string{"Separate Living Area", "Mountain View", "Complimentary Breakfast", "Executive Lounge Access"},
			Occupancy:     4,
			BedType:       "King Size Bed",
		},
		{
			ID:            3,
			Slug:          "presidential-suite",
			Name:          "Presidential Suite",
			Description:   "The most luxurious accommodation with butler service and panoramic views.",
			PricePerNight: 500,
			RoomType:      models.RoomTypePresidential,
			ImageURL:      "https://images.pexels.com/photos/2373201/pexels-photo-2373201.jpeg?auto=compress&cs=tinysrgb&w=800",
			Amenities:     []string{"Luxury Furnishings", "Panoramic Views", "Butler Service", "Private Balcony", "Premium Bar"},
			Occupancy:     6,
			BedType:       "King Size Bed",
		},
	}
}

const pexels = "https://images.pexels.com/photos/"

// GalleryImages is the fixed photo list of the gallery page.
func GalleryImages() []models.GalleryImage {
	return []models.GalleryImage{
		{ID: 1, Src: pexels + "271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "rooms", Title: "Luxury Suite"},
		{ID: 2, Src: pexels + "1134176/pexels-photo-1134176.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "rooms", Title: "Executive Room"},
		{ID: 3, Src: pexels + "1267320/pexels-photo-1267320.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "dining", Title: "Fine Dining Restaurant"},
		{ID: 4, Src: pexels + "941861/pexels-photo-941861.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "dining", Title: "Rooftop Lounge"},
		{ID: 5, Src: pexels + "261102/pexels-photo-261102.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "amenities", Title: "Infinity Pool"},
		{ID: 6, Src: pexels + "1954524/pexels-photo-1954524.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "amenities", Title: "Fitness Center"},
		{ID: 7, Src: pexels + "3757942/pexels-photo-3757942.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "amenities", Title: "Spa & Wellness"},
		{ID: 8, Src: pexels + "1709003/pexels-photo-1709003.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "events", Title: "Grand Ballroom"},
		{ID: 9, Src: pexels + "2306281/pexels-photo-2306281.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "events", Title: "Conference Center"},
		{ID: 10, Src: pexels + "271624/pexels-photo-271624.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "exterior", Title: "Hotel Exterior"},
		{ID: 11, Src: pexels + "1157557/pexels-photo-1157557.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "exterior", Title: "Garden Terrace"},
		{ID: 12, Src: pexels + "2373201/pexels-photo-2373201.jpeg?auto=compress&cs=tinysrgb&w=800", Category: "rooms", Title: "Presidential Suite"},
	}
}

// GalleryCategories lists the gallery filters; "all" comes first.
func GalleryCategories() []models.GalleryCategory {
	return []models.GalleryCategory{
		{ID: "all", Name: "All"},
		{ID: "rooms", Name: "Rooms & Suites"},
		{ID: "dining", Name: "Dining"},
		{ID: "amenities", Name: "Amenities"},
		{ID: "events", Name: "Events"},
		{ID: "exterior", Name: "Exterior"},
	}
}

// Hotel returns the hotel's public profile.
func Hotel() models.HotelSetting {
	return models.HotelSetting{
		Name:    "Ethiopian Skylight Hotel",
		Tagline: "Experience luxury hospitality in the heart of Addis Ababa.",
		Address: []string{"123 Skylight Avenue", "Addis Ababa, Ethiopia", "P.O. Box 12345"},
		Phone:   []string{"+251 11 123 4567", "+251 11 123 4568", "Emergency: +251 11 123 4569"},
		Email: []string{
			"info@ethiopianskylighthotel.com",
			"reservations@ethiopianskylighthotel.com",
			"events@ethiopianskylighthotel.com",
		},
		Hours:   []string{"Front Desk: 24/7", "Concierge: 6:00 AM - 11:00 PM", "Guest Services: 7:00 AM - 10:00 PM"},
		Website: "https://ethiopianskylighthotel.com",
	}
}

// HeroSlides are the home page carousel slides.
func HeroSlides() []models.HeroSlide {
	const size = "?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop"
	return []models.HeroSlide{
		{Image: pexels + "271624/pexels-photo-271624.jpeg" + size, Title: "Welcome to Ethiopian Skylight Hotel", Subtitle: "Experience Luxury in the Heart of Ethiopia"},
		{Image: pexels + "1134176/pexels-photo-1134176.jpeg" + size, Title: "Exceptional Comfort & Service", Subtitle: "Where Ethiopian Hospitality Meets Modern Luxury"},
		{Image: pexels + "2373201/pexels-photo-2373201.jpeg" + size, Title: "Unforgettable Experiences Await", Subtitle: "Discover the Beauty of Ethiopian Culture"},
	}
}
