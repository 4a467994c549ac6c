package services_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockScenarioRepository is a mock type for the ScenarioRepositoryFacade interface
type MockScenarioRepository struct {
	mock.Mock
}

func (m *MockScenarioRepository) FindScenarioByID(ctx context.Context, scenarioID string) (*domain.Scenario, error) {
	args := m.Called(ctx, scenarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scenario), args.Error(1)
}

func (m *MockScenarioRepository) ListScenariosByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Scenario, *string, error) {
	args := m.Called(ctx, ownerID, limit, nextToken)
	var scenarios []domain.Scenario
	if args.Get(0) != nil {
		scenarios = args.Get(0).([]domain.Scenario)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return scenarios, token, args.Error(2)
}

func (m *MockScenarioRepository) SaveScenario(ctx context.Context, scenario domain.Scenario) error {
	return m.Called(ctx, scenario).Error(0)
}

func (m *MockScenarioRepository) UpdateScenario(ctx context.Context, scenario domain.Scenario) error {
	return m.Called(ctx, scenario).Error(0)
}

func (m *MockScenarioRepository) DeleteScenario(ctx context.Context, scenarioID string) error {
	return m.Called(ctx, scenarioID).Error(0)
}

// --- Test Suite Setup ---

type ScenarioServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	mockRepo *MockScenarioRepository
	service  portssvc.ScenarioSvcFacade
	ownerID  string
}

func (suite *ScenarioServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.ownerID = uuid.NewString()
	suite.mockRepo = new(MockScenarioRepository)
	suite.service = services.NewScenarioService(
		suite.mockRepo,
		services.NewProjectionService(),
		services.WithScenarioClock(func() time.Time { return suite.now }),
	)
}

func (suite *ScenarioServiceTestSuite) cashFlowRequest() *dto.CashFlowRequest {
	return &dto.CashFlowRequest{
		MonthlyRevenue:      decimal.NewFromInt(500000),
		FixedCosts:          decimal.NewFromInt(400000),
		VariableCostPercent: decimal.NewFromInt(20),
		StartingBalance:     decimal.NewFromInt(3000000),
		DSO:                 decimal.NewFromInt(30),
		DPO:                 decimal.NewFromInt(15),
	}
}

func (suite *ScenarioServiceTestSuite) storedCashFlowScenario() *domain.Scenario {
	a, err := suite.cashFlowRequest().ToAssumptions()
	suite.Require().NoError(err)
	created := suite.now.Add(-time.Hour)
	return &domain.Scenario{
		ScenarioID: uuid.NewString(),
		OwnerID:    suite.ownerID,
		Name:       "Base case",
		Kind:       domain.CashFlowScenario,
		CashFlow:   &a,
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			CreatedBy:     suite.ownerID,
			LastUpdatedAt: created,
			LastUpdatedBy: suite.ownerID,
			Version:       1,
		},
	}
}

// --- Test Cases ---

func (suite *ScenarioServiceTestSuite) TestCreateScenario_Success() {
	req := dto.CreateScenarioRequest{Name: "  Seed round  ", Kind: domain.CashFlowScenario, CashFlow: suite.cashFlowRequest()}

	suite.mockRepo.On("SaveScenario", suite.ctx, mock.MatchedBy(func(s domain.Scenario) bool {
		return s.OwnerID == suite.ownerID && s.Name == "Seed round" && len(s.CashFlow.OneTimeIncome) == domain.CashFlowMonths
	})).Return(nil).Once()

	created, err := suite.service.CreateScenario(suite.ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotEmpty(created.ScenarioID)
	suite.Equal(domain.CashFlowScenario, created.Kind)
	suite.Nil(created.Model)
	suite.Equal(1, created.Version)
	suite.Equal(suite.now, created.CreatedAt)
	suite.Equal(suite.ownerID, created.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScenarioServiceTestSuite) TestCreateScenario_RejectsMismatchedAssumptions() {
	tests := []dto.CreateScenarioRequest{
		{Name: "x", Kind: domain.CashFlowScenario},
		{Name: "x", Kind: domain.FinancialModelScenario, CashFlow: suite.cashFlowRequest()},
		{Name: "x", Kind: domain.CashFlowScenario, CashFlow: suite.cashFlowRequest(), Model: &dto.FinancialModelRequest{}},
		{Name: "x", Kind: "balance_sheet", CashFlow: suite.cashFlowRequest()},
		{Name: "   ", Kind: domain.CashFlowScenario, CashFlow: suite.cashFlowRequest()},
	}
	for i, req := range tests {
		_, err := suite.service.CreateScenario(suite.ctx, req, suite.ownerID)
		suite.ErrorIs(err, apperrors.ErrValidation, "case %d", i)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScenario", mock.Anything, mock.Anything)
}

func (suite *ScenarioServiceTestSuite) TestCreateScenario_RejectsInvalidAssumptions() {
	req := dto.CreateScenarioRequest{
		Name:  "Bad model",
		Kind:  domain.FinancialModelScenario,
		Model: &dto.FinancialModelRequest{AnnualCapex: decimal.NewFromInt(1000)},
	}

	_, err := suite.service.CreateScenario(suite.ctx, req, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "depreciationYears")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScenario", mock.Anything, mock.Anything)
}

func (suite *ScenarioServiceTestSuite) TestCreateScenario_SaveError() {
	req := dto.CreateScenarioRequest{Name: "x", Kind: domain.CashFlowScenario, CashFlow: suite.cashFlowRequest()}
	dbErr := fmt.Errorf("%w: scenario", apperrors.ErrDuplicate)
	suite.mockRepo.On("SaveScenario", suite.ctx, mock.AnythingOfType("domain.Scenario")).Return(dbErr).Once()

	created, err := suite.service.CreateScenario(suite.ctx, req, suite.ownerID)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ScenarioServiceTestSuite) TestGetScenario_OwnerOnly() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil)

	got, err := suite.service.GetScenario(suite.ctx, stored.ScenarioID, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(stored.Name, got.Name)

	_, err = suite.service.GetScenario(suite.ctx, stored.ScenarioID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ScenarioServiceTestSuite) TestGetScenario_NotFound() {
	id := uuid.NewString()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, id).Return(nil, fmt.Errorf("%w: scenario %s", apperrors.ErrNotFound, id)).Once()

	_, err := suite.service.GetScenario(suite.ctx, id, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScenarioServiceTestSuite) TestListScenarios() {
	stored := suite.storedCashFlowScenario()
	token := "next-page"
	params := dto.ListScenariosParams{Limit: 1}
	suite.mockRepo.On("ListScenariosByOwner", suite.ctx, suite.ownerID, 1, (*string)(nil)).
		Return([]domain.Scenario{*stored}, &token, nil).Once()

	resp, err := suite.service.ListScenarios(suite.ctx, suite.ownerID, params)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Scenarios, 1)
	suite.Equal(stored.ScenarioID, resp.Scenarios[0].ScenarioID)
	suite.Equal(&token, resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScenarioServiceTestSuite) TestUpdateScenario_BumpsVersion() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateScenario", suite.ctx, mock.MatchedBy(func(s domain.Scenario) bool {
		return s.Version == 2 && s.Name == "Renamed" && s.CashFlow.MonthlyRevenue.Equal(decimal.NewFromInt(650000))
	})).Return(nil).Once()

	name := "Renamed"
	cf := suite.cashFlowRequest()
	cf.MonthlyRevenue = decimal.NewFromInt(650000)

	updated, err := suite.service.UpdateScenario(suite.ctx, stored.ScenarioID, dto.UpdateScenarioRequest{Name: &name, CashFlow: cf}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(2, updated.Version)
	suite.Equal(suite.now, updated.LastUpdatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScenarioServiceTestSuite) TestUpdateScenario_CannotChangeKind() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()

	_, err := suite.service.UpdateScenario(suite.ctx, stored.ScenarioID, dto.UpdateScenarioRequest{Model: &dto.FinancialModelRequest{}}, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateScenario", mock.Anything, mock.Anything)
}

func (suite *ScenarioServiceTestSuite) TestUpdateScenario_Conflict() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateScenario", suite.ctx, mock.AnythingOfType("domain.Scenario")).
		Return(fmt.Errorf("%w: scenario %s", apperrors.ErrConflict, stored.ScenarioID)).Once()

	name := "Renamed"
	_, err := suite.service.UpdateScenario(suite.ctx, stored.ScenarioID, dto.UpdateScenarioRequest{Name: &name}, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *ScenarioServiceTestSuite) TestDeleteScenario() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil)
	suite.mockRepo.On("DeleteScenario", suite.ctx, stored.ScenarioID).Return(nil).Once()

	suite.NoError(suite.service.DeleteScenario(suite.ctx, stored.ScenarioID, suite.ownerID))

	err := suite.service.DeleteScenario(suite.ctx, stored.ScenarioID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "DeleteScenario", 1)
}

func (suite *ScenarioServiceTestSuite) TestRunScenario_RecomputesProjection() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()

	run, err := suite.service.RunScenario(suite.ctx, stored.ScenarioID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Nil(run.Model)
	suite.Require().NotNil(run.CashFlow)
	suite.Len(run.CashFlow.Months, domain.CashFlowMonths)
	suite.True(run.CashFlow.Summary.EndingBalance.Equal(decimal.NewFromInt(3000000)))
}

func (suite *ScenarioServiceTestSuite) TestRunScenario_MissingAssumptionsIsInvariant() {
	stored := suite.storedCashFlowScenario()
	stored.CashFlow = nil
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()

	_, err := suite.service.RunScenario(suite.ctx, stored.ScenarioID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrInvariant)
}

func (suite *ScenarioServiceTestSuite) TestExportScenario() {
	stored := suite.storedCashFlowScenario()
	suite.mockRepo.On("FindScenarioByID", suite.ctx, stored.ScenarioID).Return(stored, nil).Once()

	var buf bytes.Buffer
	name, err := suite.service.ExportScenario(suite.ctx, &buf, stored.ScenarioID, suite.ownerID)

	suite.Require().NoError(err)
	suite.Regexp(`^cash_flow-\d{8}\.csv$`, name)
	suite.Contains(buf.String(), "12-Month Cash Flow Projection")
}

func TestScenarioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioServiceTestSuite))
}
