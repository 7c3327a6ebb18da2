// internal/app/features/projects/handler.go
package projects

import (
	"context"

	"github.com/dalemusser/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the slice of the project record store this feature consumes.
type Store interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, p models.Project) (models.Project, error)
}

// InternReader resolves assigned intern references when serving a
// single project. Only reads; mutation of either side goes through the
// coordinator.
type InternReader interface {
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Intern, error)
}

// Coordinator is the slice of the assignment coordinator this feature
// consumes. It is the only writer of the intern/project relation.
type Coordinator interface {
	Assign(ctx context.Context, internID, projectID primitive.ObjectID) error
	Unassign(ctx context.Context, internID, projectID primitive.ObjectID) error
	DeleteProject(ctx context.Context, projectID primitive.ObjectID) error
}

// Handler is the shared dependency container for the projects feature.
type Handler struct {
	Store   Store
	Interns InternReader
	Coord   Coordinator
	Log     *zap.Logger
}

// NewHandler constructs a projects Handler. It is called from the
// bootstrap BuildHandler function with the concrete stores and
// coordinator.
func NewHandler(store Store, internReader InternReader, coord Coordinator, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   store,
		Interns: internReader,
		Coord:   coord,
		Log:     logger,
	}
}
