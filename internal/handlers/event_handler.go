package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adjei-dev/gatherly/internal/helpers"
	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/adjei-dev/gatherly/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		userId := claims.ParsedUserID()
		if userId == uuid.Nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid user ID in token"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		created, err := e.CreateEvent(c.Request.Context(), &event, userId, accessToken)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, gin.H{"eventId": created.ID})
	}
}

// ListEvents serves both the plain listing and filtered search. Query
// params: search, category, lat, lng, radius. The radius predicate is only
// armed when both lat and lng parse.
func ListEvents(e *services.EventService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.EventFilter{
			SearchQuery: c.Query("search"),
			Category:    c.Query("category"),
		}

		latStr, lngStr := c.Query("lat"), c.Query("lng")
		if latStr != "" && lngStr != "" {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lng, lngErr := strconv.ParseFloat(lngStr, 64)
			if latErr != nil || lngErr != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid lat/lng parameters"))
				return
			}
			radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "0"), 64)
			filter.Near = &models.NearbyFilter{
				Center:      models.Coordinates{Latitude: lat, Longitude: lng},
				RadiusMiles: radius,
			}
		}

		events, err := e.SearchEvents(c.Request.Context(), filter)
		if err != nil {
			// Read path degrades to an empty list rather than failing.
			logger.Error("listing events failed", "error", err)
			c.JSON(http.StatusOK, models.SuccessResponse([]*models.Event{}, ""))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}

func GetEventByID(e *services.EventService, views *services.EventViewsService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		parsedId, err := uuid.Parse(eventID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
			return
		}

		event, err := e.GetEvent(c.Request.Context(), parsedId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		// Best-effort view tracking keyed on the session cookie; never
		// blocks the response.
		if sessionID, cerr := c.Cookie("session_id"); cerr == nil && sessionID != "" {
			if terr := views.Track(c.Request.Context(), eventID, sessionID, nil); terr != nil {
				logger.Info("view tracking failed", "event_id", eventID, "error", terr)
			}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func UpdateEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		if _, ok := currentUser(c); !ok {
			return
		}

		parsedId, err := uuid.Parse(eventID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
			return
		}

		var patch map[string]interface{}
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		updated, err := e.UpdateEvent(c.Request.Context(), parsedId, patch, accessToken)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "event updated successfully"))
	}
}

func DeleteEvent(e *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		if _, ok := currentUser(c); !ok {
			return
		}

		parsedId, err := uuid.Parse(eventID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid event ID format"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		if err := e.DeleteEvent(c.Request.Context(), parsedId, accessToken); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "event deleted successfully"))
	}
}

func EventViewStats(views *services.EventViewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		stats, err := views.Stats(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
