package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
	recorder     portssvc.LedgerRecorder
}

// NewEmployeeService creates the employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository, recorder portssvc.LedgerRecorder) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo, recorder: recorder}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// compensationFor keeps only the pay field matching the class: salary for
// salaried staff, daily rate for contractors, neither for owners.
func compensationFor(class domain.EmployeeClass, salary, dailyRate *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	switch class {
	case domain.Salaried:
		return salary, nil
	case domain.Contractor:
		return nil, dailyRate
	default:
		return nil, nil
	}
}

func (s *employeeService) CreateEmployee(ctx context.Context, actor domain.User, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if !req.Class.Valid() {
		return nil, fmt.Errorf("unknown employee class %q: %w", req.Class, apperrors.ErrValidation)
	}

	salary, dailyRate := compensationFor(req.Class, req.Salary, req.DailyRate)

	role := req.Role
	if req.Class == domain.Owner {
		role = ""
	}

	avatarURL := req.AvatarURL
	if avatarURL == "" {
		avatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(req.Name)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		Name:        req.Name,
		Class:       req.Class,
		Role:        role,
		Salary:      salary,
		DailyRate:   dailyRate,
		AvatarURL:   avatarURL,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, actor domain.User, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Class != nil {
		if !req.Class.Valid() {
			return nil, fmt.Errorf("unknown employee class %q: %w", *req.Class, apperrors.ErrValidation)
		}
		employee.Class = *req.Class
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Salary != nil {
		employee.Salary = req.Salary
	}
	if req.DailyRate != nil {
		employee.DailyRate = req.DailyRate
	}
	if req.AvatarURL != nil {
		employee.AvatarURL = *req.AvatarURL
	}
	// Re-derive so a class change drops the stale pay field.
	employee.Salary, employee.DailyRate = compensationFor(employee.Class, employee.Salary, employee.DailyRate)
	if employee.Class == domain.Owner {
		employee.Role = ""
	}
	employee.Touch(actor.UserID, time.Now())

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}

// DeleteEmployee removes the employee and their money lists. Ledger entries
// produced by past withdrawals stay.
func (s *employeeService) DeleteEmployee(ctx context.Context, actor domain.User, employeeID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// RecordAdvance adds a wage advance. Owners take withdrawals instead, and
// advances never touch the cash ledger.
func (s *employeeService) RecordAdvance(ctx context.Context, actor domain.User, employeeID string, req dto.CreateAdvanceRequest) (*domain.WageAdvance, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if employee.Class == domain.Owner {
		return nil, fmt.Errorf("owners take withdrawals, not advances: %w", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	advance := domain.WageAdvance{
		AdvanceID:   uuid.NewString(),
		EmployeeID:  employeeID,
		Amount:      req.Amount,
		Date:        req.Date,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.employeeRepo.SaveAdvance(ctx, advance); err != nil {
		s.LogError(ctx, err, "Failed to save wage advance", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to record advance: %w", err)
	}

	return &advance, nil
}

func (s *employeeService) DeleteAdvance(ctx context.Context, actor domain.User, employeeID, advanceID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.employeeRepo.DeleteAdvance(ctx, employeeID, advanceID); err != nil {
		s.LogError(ctx, err, "Failed to delete wage advance", slog.String("advance_id", advanceID))
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	return nil
}

// RecordWithdrawal adds an owner withdrawal and emits the matching outflow
// entry.
func (s *employeeService) RecordWithdrawal(ctx context.Context, actor domain.User, employeeID string, req dto.CreateWithdrawalRequest) (*domain.OwnerWithdrawal, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if employee.Class != domain.Owner {
		return nil, fmt.Errorf("only owners take withdrawals: %w", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	withdrawal := domain.OwnerWithdrawal{
		WithdrawalID: uuid.NewString(),
		EmployeeID:   employeeID,
		Amount:       req.Amount,
		Date:         req.Date,
		Note:         req.Note,
		AuditFields:  domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.employeeRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to save owner withdrawal", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	event := domain.LedgerEvent{
		Kind:         domain.EventOwnerWithdrawalRecorded,
		Amount:       withdrawal.Amount,
		Counterparty: employee.Name,
		Date:         withdrawal.Date,
		Note:         withdrawal.Note,
	}
	// The withdrawal stays recorded either way; a failed ledger write
	// surfaces to the caller.
	if err := s.recorder.RecordEvent(ctx, actor, event); err != nil {
		s.LogError(ctx, err, "Withdrawal recorded but ledger entry missing", slog.String("withdrawal_id", withdrawal.WithdrawalID))
		return nil, fmt.Errorf("withdrawal recorded but ledger entry failed: %w", err)
	}

	return &withdrawal, nil
}

// DeleteWithdrawal removes the withdrawal record only; the outflow entry it
// produced stays in the ledger.
func (s *employeeService) DeleteWithdrawal(ctx context.Context, actor domain.User, employeeID, withdrawalID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.employeeRepo.DeleteWithdrawal(ctx, employeeID, withdrawalID); err != nil {
		s.LogError(ctx, err, "Failed to delete owner withdrawal", slog.String("withdrawal_id", withdrawalID))
		return fmt.Errorf("failed to delete withdrawal: %w", err)
	}
	return nil
}
