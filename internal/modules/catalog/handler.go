package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public read surface. The hotel routes carry
// explicit search/id prefixes because gin rejects a path param next to
// a static segment at the same level.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.ListHotels)
	rg.GET("/hotels/search/:location", h.SearchHotels)
	rg.GET("/hotels/id/:hotel_id", h.GetHotel)
	rg.GET("/hotels/id/:hotel_id/rooms", h.SearchRooms)
}

// RegisterAdminRoutes wires the authenticated write surface.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.CreateHotel)
	rg.PATCH("/hotels/id/:hotel_id", h.UpdateHotel)
	rg.DELETE("/hotels/id/:hotel_id", h.DeleteHotel)
	rg.POST("/hotels/id/:hotel_id/rooms", h.CreateRoom)
	rg.PATCH("/rooms/:room_id", h.UpdateRoom)
	rg.DELETE("/rooms/:room_id", h.DeleteRoom)
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context(), c.Query("name"), c.Query("location"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotels")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) SearchHotels(c *gin.Context) {
	from, to, ok := h.dateWindow(c)
	if !ok {
		return
	}

	hotels, err := h.service.SearchHotels(c.Request.Context(), c.Param("location"), from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "date_to must be after date_from")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotelID, ok := h.paramID(c, "hotel_id")
	if !ok {
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) SearchRooms(c *gin.Context) {
	hotelID, ok := h.paramID(c, "hotel_id")
	if !ok {
		return
	}
	from, to, ok := h.dateWindow(c)
	if !ok {
		return
	}

	rooms, err := h.service.SearchRooms(c.Request.Context(), hotelID, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "date_to must be after date_from")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid hotel fields", details)
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	hotelID, ok := h.paramID(c, "hotel_id")
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), hotelID, req)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	hotelID, ok := h.paramID(c, "hotel_id")
	if !ok {
		return
	}

	if err := h.service.DeleteHotel(c.Request.Context(), hotelID); err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete hotel")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	hotelID, ok := h.paramID(c, "hotel_id")
	if !ok {
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room fields", details)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), hotelID, req)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "HOTEL_NOT_FOUND", "Hotel not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	roomID, ok := h.paramID(c, "room_id")
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	roomID, ok := h.paramID(c, "room_id")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) dateWindow(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_from, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	to, err = parseDate(c.Query("date_to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date_to, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
