package handlers

import (
	"net/http"

	"github.com/adjei-dev/gatherly/internal/helpers"
	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/adjei-dev/gatherly/internal/services"
	"github.com/gin-gonic/gin"
)

func SaveEvent(s *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		claims, ok := currentUser(c)
		if !ok {
			return
		}

		saved, err := s.Save(c.Request.Context(), claims.ParsedUserID(), eventID)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(saved, "event saved"))
	}
}

func UnsaveEvent(s *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := helpers.StringTrim(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		claims, ok := currentUser(c)
		if !ok {
			return
		}

		if err := s.Unsave(c.Request.Context(), claims.ParsedUserID(), eventID); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "event unsaved"))
	}
}

func ListSavedEvents(s *services.SavedEventsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentUser(c)
		if !ok {
			return
		}

		events, err := s.ListSaved(c.Request.Context(), claims.ParsedUserID())
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}
