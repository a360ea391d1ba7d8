package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	mock_interfaces "github.com/kavyp12/rama-vista-hub-sub001/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateForDeal(t *testing.T) {
	t.Run("empty deal id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateForDeal(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentDealID) {
			t.Fatalf("expected ErrInvalidPaymentDealID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateForDeal(context.Background(), "deal-1", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateForDeal(context.Background(), "deal-1", json.RawMessage(`{not json`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("deal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, dealRepo, gateway, nil)

		dealRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Deal{}, nil)

		_, err := uc.CreateForDeal(context.Background(), "ghost", json.RawMessage(`{}`))
		if !errors.Is(err, ErrDealNotFound) {
			t.Fatalf("expected ErrDealNotFound, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, dealRepo, gateway, nil)

		dealRepo.EXPECT().GetByID(gomock.Any(), "deal-1").Return(entities.Deal{ID: "deal-1", LeadID: "lead-1", Value: 50000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateForDeal(context.Background(), "deal-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, dealRepo, gateway, nil)

		dealRepo.EXPECT().GetByID(gomock.Any(), "deal-1").Return(entities.Deal{ID: "deal-1", LeadID: "lead-1", Value: 50000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateForDeal(context.Background(), "deal-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("amount comes from the deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, dealRepo, gateway, nil)

		dealRepo.EXPECT().GetByID(gomock.Any(), "deal-1").Return(entities.Deal{ID: "deal-1", LeadID: "lead-1", Value: 75000}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != float64(75000) {
					t.Fatalf("expected amount from deal, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "deal-1" {
					t.Fatalf("expected external_reference deal-1, got %v", m["external_reference"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID != "mp-123" || p.DealID != "deal-1" || p.LeadID != "lead-1" {
					t.Fatalf("unexpected payment %+v", p)
				}
				if p.Amount != 75000 {
					t.Fatalf("expected amount 75000, got %f", p.Amount)
				}
				return p, nil
			})

		created, err := uc.CreateForDeal(context.Background(), "deal-1", json.RawMessage(`{"transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved payment, got %s", created.Status)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		dealRepo := mock_interfaces.NewMockIDealRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, dealRepo, gateway, nil)

		dealRepo.EXPECT().GetByID(gomock.Any(), "deal-1").Return(entities.Deal{ID: "deal-1", LeadID: "lead-1", Value: 25000}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" {
					t.Fatalf("expected synthesized provider payment id")
				}
				if p.ProviderPayload["status"] != "approved" {
					t.Fatalf("expected approved mock payload, got %v", p.ProviderPayload)
				}
				return p, nil
			})

		if _, err := uc.CreateForDeal(context.Background(), "deal-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)

		p, err := uc.GetByID(context.Background(), "pay-1")
		if err != nil || p.ID != "pay-1" {
			t.Fatalf("expected pay-1, got %v / %v", p, err)
		}
	})
}

func TestPaymentUseCase_ListByDealID(t *testing.T) {
	t.Run("empty deal id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ListByDealID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentDealID) {
			t.Fatalf("expected ErrInvalidPaymentDealID, got %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByDealID(gomock.Any(), "deal-1").Return([]entities.Payment{{ID: "p1"}, {ID: "p2"}}, nil)

		got, err := uc.ListByDealID(context.Background(), "deal-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 payments, got %v / %v", got, err)
		}
	})
}
