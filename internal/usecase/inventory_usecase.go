package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrInvalidProjectInput  = errors.New("invalid project input")
	ErrInvalidPropertyInput = errors.New("invalid property input")
	ErrInvalidInventoryID   = errors.New("invalid inventory id")
)

// IInventoryUseCase exposes project/property inventory operations.

type IInventoryUseCase interface {
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateProperty(ctx context.Context, p entities.Property) (entities.Property, error)
	GetProperty(ctx context.Context, id string) (entities.Property, error)
	ListProperties(ctx context.Context, projectID string) ([]entities.Property, error)
	UpdateProperty(ctx context.Context, p entities.Property) (entities.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

type InventoryUseCase struct {
	projects   interfaces.IProjectRepository
	properties interfaces.IPropertyRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(projects interfaces.IProjectRepository, properties interfaces.IPropertyRepository) *InventoryUseCase {
	return &InventoryUseCase{projects: projects, properties: properties}
}

func (u *InventoryUseCase) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.projects.Create(ctx, p)
}

func (u *InventoryUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidInventoryID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *InventoryUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.projects.List(ctx)
}

func (u *InventoryUseCase) UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" {
		return entities.Project{}, ErrInvalidInventoryID
	}
	if p.Name == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	current, err := u.GetProject(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.projects.Update(ctx, p)
}

func (u *InventoryUseCase) DeleteProject(ctx context.Context, id string) error {
	if _, err := u.GetProject(ctx, id); err != nil {
		return err
	}
	return u.projects.Delete(ctx, strings.TrimSpace(id))
}

func (u *InventoryUseCase) CreateProperty(ctx context.Context, p entities.Property) (entities.Property, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return entities.Property{}, ErrInvalidPropertyInput
	}
	if p.Status == "" {
		p.Status = entities.PropertyStatusAvailable
	}
	if !entities.ValidPropertyStatus(p.Status) {
		return entities.Property{}, ErrInvalidPropertyInput
	}
	if p.ProjectID != "" {
		if _, err := u.GetProject(ctx, p.ProjectID); err != nil {
			return entities.Property{}, err
		}
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.properties.Create(ctx, p)
}

func (u *InventoryUseCase) GetProperty(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidInventoryID
	}
	p, err := u.properties.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

// ListProperties lists all units, or only a project's units when
// projectID is non-empty.
func (u *InventoryUseCase) ListProperties(ctx context.Context, projectID string) ([]entities.Property, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID != "" {
		return u.properties.ListByProjectID(ctx, projectID)
	}
	return u.properties.List(ctx)
}

func (u *InventoryUseCase) UpdateProperty(ctx context.Context, p entities.Property) (entities.Property, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	if p.ID == "" {
		return entities.Property{}, ErrInvalidInventoryID
	}
	if p.Title == "" || !entities.ValidPropertyStatus(p.Status) {
		return entities.Property{}, ErrInvalidPropertyInput
	}
	current, err := u.GetProperty(ctx, p.ID)
	if err != nil {
		return entities.Property{}, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.properties.Update(ctx, p)
}

func (u *InventoryUseCase) DeleteProperty(ctx context.Context, id string) error {
	if _, err := u.GetProperty(ctx, id); err != nil {
		return err
	}
	return u.properties.Delete(ctx, strings.TrimSpace(id))
}
