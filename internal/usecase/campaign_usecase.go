package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrInvalidCampaignID    = errors.New("invalid campaign id")
	ErrInvalidCampaignInput = errors.New("invalid campaign input")
	ErrCampaignCompleted    = errors.New("campaign already completed")
)

// CampaignDispatchEvent is the payload published to the broker when a
// campaign is dispatched. The sending worker is a separate service.
type CampaignDispatchEvent struct {
	CampaignID   string    `json:"campaign_id"`
	Name         string    `json:"name"`
	Channel      string    `json:"channel"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// ICampaignUseCase exposes marketing campaign operations.

type ICampaignUseCase interface {
	Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	GetByID(ctx context.Context, id string) (entities.Campaign, error)
	List(ctx context.Context) ([]entities.Campaign, error)
	Update(ctx context.Context, c entities.Campaign) (entities.Campaign, error)
	Delete(ctx context.Context, id string) error
	Dispatch(ctx context.Context, id string) (entities.Campaign, error)
}

type CampaignUseCase struct {
	repo      interfaces.ICampaignRepository
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
}

var _ ICampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(repo interfaces.ICampaignRepository, publisher interfaces.IEventPublisher, logger *zap.Logger) *CampaignUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignUseCase{repo: repo, publisher: publisher, logger: logger}
}

func (u *CampaignUseCase) Create(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Channel = strings.TrimSpace(c.Channel)
	if c.Name == "" || c.Channel == "" {
		return entities.Campaign{}, ErrInvalidCampaignInput
	}
	if c.Status == "" {
		c.Status = entities.CampaignStatusDraft
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CampaignUseCase) GetByID(ctx context.Context, id string) (entities.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if c.ID == "" {
		return entities.Campaign{}, ErrCampaignNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) List(ctx context.Context) ([]entities.Campaign, error) {
	return u.repo.List(ctx)
}

func (u *CampaignUseCase) Update(ctx context.Context, c entities.Campaign) (entities.Campaign, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return entities.Campaign{}, ErrInvalidCampaignID
	}
	if c.Name == "" {
		return entities.Campaign{}, ErrInvalidCampaignInput
	}
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Campaign{}, err
	}
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

// Dispatch publishes a campaign.dispatch event and activates the
// campaign. Publish failure aborts the dispatch so the operator can
// retry; nothing is half-activated.
func (u *CampaignUseCase) Dispatch(ctx context.Context, id string) (entities.Campaign, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Campaign{}, err
	}
	if c.Status == entities.CampaignStatusCompleted {
		return entities.Campaign{}, ErrCampaignCompleted
	}
	if u.publisher == nil {
		return entities.Campaign{}, errors.New("event publisher not configured")
	}

	event := CampaignDispatchEvent{
		CampaignID:   c.ID,
		Name:         c.Name,
		Channel:      c.Channel,
		DispatchedAt: time.Now().UTC(),
	}
	if err := u.publisher.Publish("campaign.dispatch", event); err != nil {
		u.logger.Error("campaign dispatch publish failed", zap.String("campaign_id", c.ID), zap.Error(err))
		return entities.Campaign{}, err
	}
	u.logger.Info("campaign dispatched", zap.String("campaign_id", c.ID), zap.String("channel", c.Channel))

	c.Status = entities.CampaignStatusActive
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}
