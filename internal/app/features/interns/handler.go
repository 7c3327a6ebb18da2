// internal/app/features/interns/handler.go
package interns

import (
	"context"

	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the intern record store this feature consumes.
type Store interface {
	List(ctx context.Context) ([]models.Intern, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Intern, error)
	Create(ctx context.Context, in models.Intern) (models.Intern, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.Intern) (models.Intern, error)
	SetTechStacks(ctx context.Context, id primitive.ObjectID, stacks []string) (*models.Intern, error)
}

// Coordinator is the slice of the assignment coordinator this feature
// consumes. Deleting an intern must cascade through it; the feature
// never touches assignment lists itself.
type Coordinator interface {
	DeleteIntern(ctx context.Context, internID primitive.ObjectID) error
}

// Handler is the shared dependency container for the interns feature.
type Handler struct {
	Store Store
	Coord Coordinator
	Log   *zap.Logger
}

// NewHandler constructs an interns Handler. It is called from the
// bootstrap BuildHandler function with the concrete store and
// coordinator.
func NewHandler(store Store, coord Coordinator, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Coord: coord,
		Log:   logger,
	}
}
