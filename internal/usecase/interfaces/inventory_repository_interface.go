package interfaces

import (
	"context"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

// IPropertyRepository abstracts DynamoDB persistence for Property.

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	List(ctx context.Context) ([]entities.Property, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
	Delete(ctx context.Context, id string) error
}
