package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"house_hunter/internal/models"
	"house_hunter/internal/repository"
	"house_hunter/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListHouses   = "failed to load listings"
	errCreateHouse  = "failed to create listing"
	errGetHouse     = "failed to load listing"
	errUpdateHouse  = "failed to update listing"
	errDeleteHouse  = "failed to delete listing"
	errListingID404 = "listing not found"
)

// listingRequest is the create/replace payload; field names match the
// legacy client wire format.
type listingRequest struct {
	Name          string `json:"name" binding:"required"`
	City          string `json:"city" binding:"required"`
	OwnerName     string `json:"ownerName"`
	OwnerEmail    string `json:"email"`
	ContactNumber string `json:"number"`
	RentPerMonth  int    `json:"rent" binding:"required"`
	Availability  string `json:"availability"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	TotalRooms    int    `json:"totalRooms"`
	Image         string `json:"image"`
	HomeSizeSqFt  int    `json:"size"`
}

func (r listingRequest) toModel() models.Listing {
	return models.Listing{
		Name:          r.Name,
		City:          r.City,
		OwnerName:     r.OwnerName,
		OwnerEmail:    r.OwnerEmail,
		ContactNumber: r.ContactNumber,
		RentPerMonth:  r.RentPerMonth,
		Availability:  r.Availability,
		Description:   r.Description,
		Location:      r.Location,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		TotalRooms:    r.TotalRooms,
		Image:         r.Image,
		HomeSizeSqFt:  r.HomeSizeSqFt,
	}
}

// intQueryParam parses an optional integer query parameter. Returns
// (nil, nil) when absent, an error when present but not an integer.
func intQueryParam(c *gin.Context, name string) (*int, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.New("invalid '" + name + "': expected an integer")
	}
	return &n, nil
}

// @Summary      Search listings
// @Description  All filters are optional and AND-combined. 'search' is a case-insensitive substring over city, bedrooms, bathrooms, location and size. 'rentRange' is "min-max" inclusive.
// @Tags         houses
// @Produce      json
// @Param        search      query  string  false  "Free-text token"
// @Param        bedrooms    query  int     false  "Exact bedroom count"
// @Param        bathrooms   query  int     false  "Exact bathroom count"
// @Param        totalRooms  query  int     false  "Exact total room count"
// @Param        city        query  string  false  "City substring"
// @Param        rentRange   query  string  false  "Inclusive rent range"  example(500-1000)
// @Param        email       query  string  false  "Owner email substring"
// @Success      200  {array}   models.Listing
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /houses [get]
func (h *Handler) listHouses(c *gin.Context) {
	q := service.ListingQuery{
		Search:     c.Query("search"),
		City:       c.Query("city"),
		OwnerEmail: c.Query("email"),
		RentRange:  c.Query("rentRange"),
	}

	var err error
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"bedrooms", &q.Bedrooms},
		{"bathrooms", &q.Bathrooms},
		{"totalRooms", &q.TotalRooms},
	} {
		if *p.dst, err = intQueryParam(c, p.name); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	houses, err := h.services.Search(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRentRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListHouses, "list_houses_failed", err)
		return
	}

	c.JSON(http.StatusOK, houses)
}

// @Summary      Create listing
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        body  body  listingRequest  true  "Listing fields"
// @Success      200   {object}  map[string]string  "insertedId"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /houses [post]
func (h *Handler) createHouse(c *gin.Context) {
	var input listingRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Listings.Create(c.Request.Context(), input.toModel())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateHouse, "create_house_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// @Summary      Get listing by id
// @Tags         houses
// @Produce      json
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  models.Listing
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /house/{id} [get]
func (h *Handler) getHouse(c *gin.Context) {
	id := c.Param("id")

	house, err := h.services.Listings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.listingError(c, id, err, errGetHouse, "get_house_failed")
		return
	}

	c.JSON(http.StatusOK, house)
}

// @Summary      Replace listing
// @Description  Full-field replace; every field is overwritten with the payload value.
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Listing id"
// @Param        body  body  listingRequest  true  "Replacement fields"
// @Success      200   {object}  repository.ReplaceResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /house/{id} [put]
func (h *Handler) updateHouse(c *gin.Context) {
	id := c.Param("id")

	var input listingRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Listings.Replace(c.Request.Context(), id, input.toModel())
	if err != nil {
		h.listingError(c, id, err, errUpdateHouse, "update_house_failed")
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary      Delete listing
// @Tags         houses
// @Produce      json
// @Param        id  path  string  true  "Listing id"
// @Success      200  {object}  map[string]int  "deleted"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /house/{id} [delete]
func (h *Handler) deleteHouse(c *gin.Context) {
	id := c.Param("id")

	n, err := h.services.Listings.Delete(c.Request.Context(), id)
	if err != nil {
		h.listingError(c, id, err, errDeleteHouse, "delete_house_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// listingError maps listing-operation failures onto the error taxonomy:
// malformed id → 400, missing row → 404, anything else → 500.
func (h *Handler) listingError(c *gin.Context, id string, err error, userMsg, logKey string) {
	switch {
	case errors.Is(err, service.ErrInvalidListingID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errListingID404})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, "id", id)
	}
}
