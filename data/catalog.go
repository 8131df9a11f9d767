// Package data chứa dữ liệu mẫu của catalog (host, experience, stay) và các danh sách lựa chọn.
package data

import (
	"time"

	"stayrooted/models"
)

var (
	Cities        = []string{"Delhi", "Mumbai", "Jaipur", "Kerala", "Agra", "Goa", "Varanasi", "Bangalore"}
	Categories    = []string{"Food Tours", "Cultural Experiences", "Historical Sites", "Family Fun", "Hidden Gems", "Adventure"}
	States        = []string{"Punjab", "Himachal Pradesh", "Kerala", "Rajasthan", "Karnataka", "Goa", "Uttarakhand", "Tamil Nadu"}
	PropertyTypes = []string{"farmhouse", "cottage", "villa", "traditional_home", "treehouse"}
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hosts trả về danh sách host mẫu (bản sao mới mỗi lần gọi)
func Hosts() []models.User {
	return []models.User{
		{
			ID:        "1",
			Email:     "priya@example.com",
			Name:      "Priya Sharma",
			Role:      "host",
			Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?w=150",
			Bio:       "Born and raised in Delhi, I love sharing the hidden gems of Old Delhi and authentic Mughlai cuisine.",
			Phone:     "+91 98765 43210",
			CreatedAt: date("2024-01-15T00:00:00Z"),
		},
		{
			ID:        "2",
			Email:     "raj@example.com",
			Name:      "Raj Patel",
			Role:      "host",
			Avatar:    "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?w=150",
			Bio:       "Mumbai street food expert with 15 years of experience guiding food tours through local markets.",
			Phone:     "+91 87654 32109",
			CreatedAt: date("2024-01-10T00:00:00Z"),
		},
		{
			ID:        "3",
			Email:     "maya@example.com",
			Name:      "Maya Nair",
			Role:      "host",
			Avatar:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?w=150",
			Bio:       "Kerala backwaters native offering authentic houseboat experiences and traditional cooking classes.",
			Phone:     "+91 76543 21098",
			CreatedAt: date("2024-01-20T00:00:00Z"),
		},
	}
}

// Experiences trả về danh sách experience mẫu, chưa gắn host
func Experiences() []models.Experience {
	return []models.Experience{
		{
			ID:               "1",
			Title:            "Old Delhi Heritage Food Walk",
			Description:      "Explore the bustling streets of Old Delhi while savoring authentic Mughlai cuisine, street food, and traditional sweets. Visit century-old shops, interact with local vendors, and discover the culinary secrets passed down through generations.",
			ShortDescription: "Authentic Old Delhi street food tour with local guide",
			City:             "Delhi",
			Coordinates:      models.Coordinates{Latitude: 28.6562, Longitude: 77.2410},
			Category:         "Food Tours",
			Price:            1500,
			Duration:         4,
			MaxGroupSize:     8,
			Images: []string{
				"https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
				"https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
			},
			HostID:       "1",
			Rating:       4.8,
			ReviewsCount: 127,
			CreatedAt:    date("2024-01-15T00:00:00Z"),
		},
		{
			ID:               "2",
			Title:            "Mumbai Street Food Adventure",
			Description:      "Experience Mumbai's incredible street food scene from Chowpatty Beach to Mohammed Ali Road. Taste iconic vada pav, bhel puri, dosa, and end with kulfi at a century-old shop.",
			ShortDescription: "Mumbai street food tour covering iconic local flavors",
			City:             "Mumbai",
			Coordinates:      models.Coordinates{Latitude: 19.0760, Longitude: 72.8777},
			Category:         "Food Tours",
			Price:            1200,
			Duration:         3,
			MaxGroupSize:     6,
			Images: []string{
				"https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg",
				"https://images.pexels.com/photos/958545/pexels-photo-958545.jpeg",
			},
			HostID:       "2",
			Rating:       4.9,
			ReviewsCount: 203,
			CreatedAt:    date("2024-01-16T00:00:00Z"),
		},
		{
			ID:               "3",
			Title:            "Kerala Backwaters Cultural Experience",
			Description:      "Sail through serene backwaters on a traditional houseboat, learn about coconut farming, witness toddy tapping, and enjoy a homemade Kerala feast prepared with local spices.",
			ShortDescription: "Traditional houseboat experience with local cuisine",
			City:             "Kerala",
			Coordinates:      models.Coordinates{Latitude: 9.9312, Longitude: 76.2673},
			Category:         "Cultural Experiences",
			Price:            3500,
			Duration:         8,
			MaxGroupSize:     4,
			Images: []string{
				"https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
				"https://images.pexels.com/photos/417074/pexels-photo-417074.jpeg",
			},
			HostID:       "3",
			Rating:       4.7,
			ReviewsCount: 89,
			CreatedAt:    date("2024-01-17T00:00:00Z"),
		},
		{
			ID:               "4",
			Title:            "Taj Mahal Sunrise Photography Tour",
			Description:      "Capture the magic of Taj Mahal at sunrise with a local photographer. Learn about Mughal architecture, hear romantic stories, and discover the best photography spots.",
			ShortDescription: "Professional photography tour of Taj Mahal at sunrise",
			City:             "Agra",
			Coordinates:      models.Coordinates{Latitude: 27.1751, Longitude: 78.0421},
			Category:         "Historical Sites",
			Price:            2000,
			Duration:         5,
			MaxGroupSize:     10,
			Images: []string{
				"https://images.pexels.com/photos/1583339/pexels-photo-1583339.jpeg",
				"https://images.pexels.com/photos/1150/pexels-photo-1150.jpeg",
			},
			HostID:       "1",
			Rating:       4.9,
			ReviewsCount: 156,
			CreatedAt:    date("2024-01-18T00:00:00Z"),
		},
		{
			ID:               "5",
			Title:            "Jaipur Royal Palace Adventure",
			Description:      "Explore Jaipur's magnificent palaces and forts with a local historian. Ride an elephant at Amber Fort, shop in colorful bazaars, and enjoy a traditional Rajasthani lunch.",
			ShortDescription: "Royal palaces and forts tour with elephant ride",
			City:             "Jaipur",
			Coordinates:      models.Coordinates{Latitude: 26.9124, Longitude: 75.7873},
			Category:         "Family Fun",
			Price:            2800,
			Duration:         6,
			MaxGroupSize:     8,
			Images: []string{
				"https://images.pexels.com/photos/3408744/pexels-photo-3408744.jpeg",
				"https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
			},
			HostID:       "2",
			Rating:       4.6,
			ReviewsCount: 94,
			CreatedAt:    date("2024-01-19T00:00:00Z"),
		},
		{
			ID:               "6",
			Title:            "Hidden Gems of Mumbai",
			Description:      "Discover Mumbai beyond the tourist trail. Visit local art galleries, hidden temples, artisan workshops, and enjoy chai with locals in their neighborhood.",
			ShortDescription: "Off-beat Mumbai exploration with local insights",
			City:             "Mumbai",
			Coordinates:      models.Coordinates{Latitude: 19.0176, Longitude: 72.8562},
			Category:         "Hidden Gems",
			Price:            1800,
			Duration:         5,
			MaxGroupSize:     6,
			Images: []string{
				"https://images.pexels.com/photos/2341290/pexels-photo-2341290.jpeg",
				"https://images.pexels.com/photos/1109197/pexels-photo-1109197.jpeg",
			},
			HostID:       "2",
			Rating:       4.8,
			ReviewsCount: 71,
			CreatedAt:    date("2024-01-20T00:00:00Z"),
		},
	}
}

// Stays trả về danh sách homestay mẫu, chưa gắn host
func Stays() []models.Stay {
	return []models.Stay{
		{
			ID:               "1",
			Title:            "Rustic Farmhouse in Punjab Countryside",
			Description:      "Experience authentic Punjabi village life in our traditional farmhouse surrounded by wheat fields. Wake up to the sound of roosters, enjoy fresh farm-to-table meals, and participate in daily farming activities. Our family has been farming this land for generations and we love sharing our way of life with guests.",
			ShortDescription: "Traditional Punjabi farmhouse with authentic village experience",
			City:             "Amritsar",
			State:            "Punjab",
			Coordinates:      models.Coordinates{Latitude: 31.6340, Longitude: 74.8723},
			PropertyType:     "farmhouse",
			PricePerNight:    2500,
			MaxGuests:        6,
			Bedrooms:         3,
			Bathrooms:        2,
			Images: []string{
				"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
				"https://images.pexels.com/photos/1643383/pexels-photo-1643383.jpeg",
				"https://images.pexels.com/photos/1396132/pexels-photo-1396132.jpeg",
			},
			Amenities:     []string{"Farm-to-table meals", "Bullock cart rides", "Traditional cooking classes", "Bonfire evenings", "Free WiFi", "Air conditioning"},
			HouseRules:    []string{"No smoking indoors", "Respect local customs", "Participate in morning prayers (optional)", "Help with farm activities"},
			HostID:        "1",
			Rating:        4.9,
			ReviewsCount:  67,
			AvailableFrom: "2024-01-01",
			AvailableTo:   "2024-12-31",
			CreatedAt:     date("2024-01-10T00:00:00Z"),
		},
		{
			ID:               "2",
			Title:            "Cozy Mountain Cottage in Himachal",
			Description:      "Escape to our charming wooden cottage nestled in the Himachal hills. Surrounded by apple orchards and pine forests, this is the perfect retreat for nature lovers. Enjoy panoramic mountain views, fresh mountain air, and home-cooked Himachali cuisine prepared by our family.",
			ShortDescription: "Mountain cottage with apple orchards and stunning valley views",
			City:             "Manali",
			State:            "Himachal Pradesh",
			Coordinates:      models.Coordinates{Latitude: 32.2396, Longitude: 77.1887},
			PropertyType:     "cottage",
			PricePerNight:    3200,
			MaxGuests:        4,
			Bedrooms:         2,
			Bathrooms:        1,
			Images: []string{
				"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg",
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg",
				"https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg",
			},
			Amenities:     []string{"Mountain views", "Apple orchard access", "Fireplace", "Home-cooked meals", "Trekking guides", "Free parking"},
			HouseRules:    []string{"No loud music after 9 PM", "Respect nature", "No littering", "Inform host about trekking plans"},
			HostID:        "2",
			Rating:        4.8,
			ReviewsCount:  43,
			AvailableFrom: "2024-03-01",
			AvailableTo:   "2024-11-30",
			CreatedAt:     date("2024-01-15T00:00:00Z"),
		},
		{
			ID:               "3",
			Title:            "Traditional Kerala Backwater Villa",
			Description:      "Stay in our ancestral Kerala home right on the backwaters. This 150-year-old traditional house features authentic Kerala architecture with modern comforts. Enjoy canoe rides, fishing, and authentic Kerala cuisine cooked in our traditional kitchen using coconut oil and spices from our garden.",
			ShortDescription: "Ancestral Kerala home on backwaters with traditional architecture",
			City:             "Alleppey",
			State:            "Kerala",
			Coordinates:      models.Coordinates{Latitude: 9.4981, Longitude: 76.3388},
			PropertyType:     "traditional_home",
			PricePerNight:    4000,
			MaxGuests:        8,
			Bedrooms:         4,
			Bathrooms:        3,
			Images: []string{
				"https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg",
				"https://images.pexels.com/photos/962464/pexels-photo-962464.jpeg",
				"https://images.pexels.com/photos/1134166/pexels-photo-1134166.jpeg",
			},
			Amenities:     []string{"Backwater access", "Traditional canoe", "Spice garden", "Ayurvedic treatments", "Cooking classes", "Free WiFi"},
			HouseRules:    []string{"Remove shoes before entering", "Respect traditional customs", "No alcohol in common areas", "Quiet hours 10 PM - 6 AM"},
			HostID:        "3",
			Rating:        4.9,
			ReviewsCount:  89,
			AvailableFrom: "2024-01-01",
			AvailableTo:   "2024-12-31",
			CreatedAt:     date("2024-01-20T00:00:00Z"),
		},
		{
			ID:               "4",
			Title:            "Rajasthani Heritage Villa in Udaipur",
			Description:      "Experience royal Rajasthani hospitality in our restored heritage villa. Built in the 18th century, this property features traditional Rajasthani architecture, courtyards, and stunning lake views. Our family has preserved the authentic charm while adding modern amenities for your comfort.",
			ShortDescription: "Heritage villa with royal Rajasthani architecture and lake views",
			City:             "Udaipur",
			State:            "Rajasthan",
			Coordinates:      models.Coordinates{Latitude: 24.5854, Longitude: 73.7125},
			PropertyType:     "villa",
			PricePerNight:    5500,
			MaxGuests:        10,
			Bedrooms:         5,
			Bathrooms:        4,
			Images: []string{
				"https://images.pexels.com/photos/3408744/pexels-photo-3408744.jpeg",
				"https://images.pexels.com/photos/789750/pexels-photo-789750.jpeg",
				"https://images.pexels.com/photos/2034335/pexels-photo-2034335.jpeg",
			},
			Amenities:     []string{"Lake views", "Traditional courtyard", "Royal dining", "Cultural performances", "Palace tours", "Airport pickup"},
			HouseRules:    []string{"Dress modestly in common areas", "Respect heritage property", "No smoking", "Photography restrictions in some areas"},
			HostID:        "1",
			Rating:        4.7,
			ReviewsCount:  124,
			AvailableFrom: "2024-01-01",
			AvailableTo:   "2024-12-31",
			CreatedAt:     date("2024-01-25T00:00:00Z"),
		},
		{
			ID:               "5",
			Title:            "Unique Treehouse in Western Ghats",
			Description:      "Sleep among the treetops in our eco-friendly treehouse in the Western Ghats. Built sustainably using local materials, this unique accommodation offers an immersive forest experience. Wake up to bird songs, spot wildlife, and enjoy organic meals prepared with ingredients from our permaculture farm.",
			ShortDescription: "Eco-friendly treehouse experience in Western Ghats forest",
			City:             "Coorg",
			State:            "Karnataka",
			Coordinates:      models.Coordinates{Latitude: 12.3375, Longitude: 75.8069},
			PropertyType:     "treehouse",
			PricePerNight:    3800,
			MaxGuests:        2,
			Bedrooms:         1,
			Bathrooms:        1,
			Images: []string{
				"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg",
				"https://images.pexels.com/photos/1134166/pexels-photo-1134166.jpeg",
				"https://images.pexels.com/photos/1438832/pexels-photo-1438832.jpeg",
			},
			Amenities:     []string{"Forest views", "Wildlife spotting", "Organic meals", "Nature walks", "Sustainable living", "Stargazing deck"},
			HouseRules:    []string{"Minimal noise to respect wildlife", "No plastic items", "Compost organic waste", "Follow eco-guidelines"},
			HostID:        "2",
			Rating:        4.9,
			ReviewsCount:  56,
			AvailableFrom: "2024-02-01",
			AvailableTo:   "2024-12-15",
			CreatedAt:     date("2024-02-01T00:00:00Z"),
		},
	}
}

// Contains kiểm tra value có nằm trong danh sách không (so khớp chính xác)
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
