package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kavyp12/rama-vista-hub-sub001/internal/adapter/http/handlers/mocks"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/domain/entities"
	"github.com/kavyp12/rama-vista-hub-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLeadRouter(h *LeadHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leads", h.CreateLead)
	r.GET("/leads", h.ListLeads)
	r.GET("/leads/pipeline", h.GetPipeline)
	r.GET("/leads/:id", h.GetLead)
	r.PUT("/leads/:id", h.UpdateLead)
	r.DELETE("/leads/:id", h.DeleteLead)
	r.GET("/leads/:id/timeline", h.GetTimeline)
	r.GET("/leads/:id/detail", h.GetDetail)
	return r
}

func TestLeadHandler_CreateLead(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(NewLeadHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(NewLeadHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{
			ID: "lead-1", Name: "Asha", Phone: "9876543210", Stage: entities.LeadStageNew,
		}, nil)

		body := `{"name":"Asha","phone":"9876543210"}`
		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["id"] != "lead-1" {
			t.Fatalf("expected lead-1, got %v", resp["id"])
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(NewLeadHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Lead{}, usecase.ErrInvalidStage)

		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(`{"name":"Asha","phone":"9876543210","stage":"parked"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLeadHandler_GetLead(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(NewLeadHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		req := httptest.NewRequest(http.MethodGet, "/leads/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := newLeadRouter(NewLeadHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{ID: "lead-1", Name: "Asha"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/leads/lead-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestLeadHandler_ListLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	r := newLeadRouter(NewLeadHandler(uc))

	uc.EXPECT().List(gomock.Any(), usecase.LeadFilter{
		Stage:       entities.LeadStageNew,
		Temperature: entities.TemperatureHot,
		AssignedTo:  "agent-1",
	}).Return([]entities.Lead{{ID: "lead-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leads?stage=new&temperature=hot&assigned_to=agent-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLeadHandler_DeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	r := newLeadRouter(NewLeadHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "lead-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/leads/lead-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestLeadHandler_GetPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	r := newLeadRouter(NewLeadHandler(uc))

	uc.EXPECT().Pipeline(gomock.Any()).Return([]usecase.StageColumn{
		{Stage: entities.LeadStageNew, Rows: []usecase.PipelineRow{
			{Lead: entities.Lead{ID: "lead-1"}, DisplayProject: "Sunrise Heights", ProjectKey: "lead-1-proj-1", ProjectVisitCount: 2},
		}},
		{Stage: entities.LeadStageContacted, Rows: []usecase.PipelineRow{}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leads/pipeline", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cols []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &cols); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
}

func TestLeadHandler_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	r := newLeadRouter(NewLeadHandler(uc))

	uc.EXPECT().Detail(gomock.Any(), "lead-1").Return(usecase.LeadDetail{
		Lead: entities.Lead{ID: "lead-1", Name: "Asha"},
		ProjectGroups: []usecase.ProjectGroup{
			{DisplayProject: "Sunrise Heights", Lead: entities.Lead{ID: "lead-1"}},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leads/lead-1/detail", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapLeadError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidLeadID, http.StatusBadRequest},
		{usecase.ErrInvalidLeadInput, http.StatusBadRequest},
		{usecase.ErrInvalidStage, http.StatusBadRequest},
		{usecase.ErrInvalidTemperature, http.StatusBadRequest},
		{usecase.ErrLeadNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapLeadError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
