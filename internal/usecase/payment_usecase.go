package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentDealID       = errors.New("invalid deal_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates "collect a token/booking payment against
// a deal": call the gateway, persist the provider payload for audit.

type IPaymentUseCase interface {
	CreateForDeal(ctx context.Context, dealID string, payload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	dealRepo interfaces.IDealRepository
	gateway  interfaces.IPaymentGateway
	logger   *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, dealRepo interfaces.IDealRepository, gateway interfaces.IPaymentGateway, logger *zap.Logger) *PaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{repo: repo, dealRepo: dealRepo, gateway: gateway, logger: logger}
}

func (u *PaymentUseCase) CreateForDeal(ctx context.Context, dealID string, payload json.RawMessage) (entities.Payment, error) {
	mockMode := isPaymentGatewayMockEnabled()
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return entities.Payment{}, ErrInvalidPaymentDealID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	deal, err := u.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return entities.Payment{}, err
	}
	if deal.ID == "" {
		return entities.Payment{}, ErrDealNotFound
	}

	// The source of truth for the amount is the deal record, and
	// external_reference links the provider event back to it.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = dealID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Token payment for deal %s", dealID)
		}
		reqMap["transaction_amount"] = deal.Value
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		u.logger.Info("payment gateway mock mode, skipping provider call", zap.String("deal_id", dealID))
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Payment{}, mErr
		}
		providerResp = b
	} else {
		u.logger.Info("calling payment gateway", zap.String("deal_id", dealID))
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.logger.Error("payment gateway failed", zap.String("deal_id", dealID), zap.Error(err))
			if isGatewayUnauthorized(err) {
				return entities.Payment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Payment{}, ErrPaymentGatewayBadRequest
			}
			return entities.Payment{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed", zap.String("deal_id", dealID), zap.Error(err))
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		DealID:             dealID,
		LeadID:             deal.LeadID,
		Amount:             deal.Value,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, err
	}
	u.logger.Info("payment recorded",
		zap.String("deal_id", dealID),
		zap.String("payment_id", created.ID),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByDealID(ctx context.Context, dealID string) ([]entities.Payment, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidPaymentDealID
	}
	return u.repo.ListByDealID(ctx, dealID)
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
