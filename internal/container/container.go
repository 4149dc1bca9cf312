package container

import (
	"log/slog"

	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/adjei-dev/gatherly/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger

	UserService          *services.UserService
	EventService         *services.EventService
	ParticipationService *services.ParticipationService
	SavedEventsService   *services.SavedEventsService
	EventViewsService    *services.EventViewsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongodb := models.MongodbNewRepo(mongoDBClient)

	return &Container{
		Logger:               logger,
		UserService:          services.NewUserService(supa, supa),
		EventService:         services.NewEventService(supa),
		ParticipationService: services.NewParticipationService(supa, supa),
		SavedEventsService:   services.NewSavedEventsService(mongodb, supa),
		EventViewsService:    services.NewEventViewsService(mongodb),
	}
}
