package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/handlers"
	"github.com/construtech/backoffice/internal/platform/config"
	"github.com/construtech/backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DebtService ---
type MockDebtService struct {
	mock.Mock
}

func (m *MockDebtService) GetDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtService) CreateDebt(ctx context.Context, actor domain.User, req dto.CreateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) UpdateDebt(ctx context.Context, actor domain.User, debtID string, req dto.UpdateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, actor, debtID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtService) DeleteDebt(ctx context.Context, actor domain.User, debtID string) error {
	args := m.Called(ctx, actor, debtID)
	return args.Error(0)
}

func (m *MockDebtService) SettleDebt(ctx context.Context, actor domain.User, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, actor, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

var _ portssvc.DebtSvcFacade = (*MockDebtService)(nil)

// --- Test Suite ---
type DebtHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDebtService *MockDebtService
	jwtSecret       string
}

func (suite *DebtHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "backoffice-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *DebtHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockDebtService = new(MockDebtService)

	cfg := &config.Config{
		JWTSecret: suite.jwtSecret,
		RateLimit: "1000-M",
	}
	container := &portssvc.ServiceContainer{
		Debt: suite.mockDebtService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *DebtHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DebtHandlerTestSuite) TestSettleDebt_Success() {
	debtID := uuid.NewString()
	actorID := uuid.NewString()
	settled := &domain.Debt{
		DebtID:  debtID,
		Name:    "Cement supplier",
		Amount:  decimal.NewFromInt(1300),
		DueDate: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.DebtSettled,
	}

	suite.mockDebtService.On("SettleDebt",
		mock.Anything,
		mock.MatchedBy(func(actor domain.User) bool {
			return actor.UserID == actorID && actor.Role == domain.RoleAdmin
		}),
		debtID,
	).Return(settled, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/settle", debtID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID, domain.RoleAdmin))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DebtResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(debtID, resp.DebtID)
	suite.Equal("SETTLED", resp.Status)
	suite.mockDebtService.AssertExpectations(suite.T())
}

func (suite *DebtHandlerTestSuite) TestSettleDebt_PermissionDenialIsNoContent() {
	debtID := uuid.NewString()

	suite.mockDebtService.On("SettleDebt", mock.Anything, mock.Anything, debtID).
		Return(nil, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/debts/%s/settle", debtID), nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleViewer))

	w := suite.serve(req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
}

func (suite *DebtHandlerTestSuite) TestGetDebt_NotFound() {
	debtID := uuid.NewString()

	suite.mockDebtService.On("GetDebtByID", mock.Anything, debtID).
		Return(nil, fmt.Errorf("debt %s: %w", debtID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/debts/"+debtID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleViewer))

	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DebtHandlerTestSuite) TestCreateDebt_ValidationErrorIsBadRequest() {
	actorID := uuid.NewString()

	suite.mockDebtService.On("CreateDebt", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("a debt cannot start settled: %w", apperrors.ErrValidation)).Once()

	body, _ := json.Marshal(dto.CreateDebtRequest{
		Name:    "Rebar order",
		Amount:  decimal.NewFromInt(500),
		DueDate: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.DebtSettled,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/debts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(actorID, domain.RoleAdmin))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DebtHandlerTestSuite) TestListDebts_MissingTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/debts", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDebtService.AssertNotCalled(suite.T(), "ListDebts")
}

func TestDebtHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DebtHandlerTestSuite))
}
