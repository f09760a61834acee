package service

// RegisterInput is the payload accepted at registration time.
type RegisterInput struct {
	Name     string
	Role     string
	Email    string
	Number   string
	Password string // plaintext; hashed before it leaves the service
	Image    string
}

// ListingQuery carries the optional search filters for GET /houses.
// Nil/empty fields contribute no predicate clause.
type ListingQuery struct {
	Search     string
	Bedrooms   *int
	Bathrooms  *int
	TotalRooms *int
	City       string
	OwnerEmail string
	RentRange  string // "min-max", both inclusive integers
}
