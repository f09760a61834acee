package models

// Listing is a single rental house advert.
// ID is an opaque store-assigned identifier (UUID string).
type Listing struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	OwnerName     string `json:"ownerName"`
	OwnerEmail    string `json:"email"`
	ContactNumber string `json:"number"`
	RentPerMonth  int    `json:"rent"`
	Availability  string `json:"availability"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	TotalRooms    int    `json:"totalRooms"`
	Image         string `json:"image"`
	HomeSizeSqFt  int    `json:"size"`
}
