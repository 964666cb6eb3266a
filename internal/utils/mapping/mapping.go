// Package mapping converts between domain entities and database row models.
package mapping

import (
	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToModelTransaction converts a domain cash transaction to its row model.
func ToModelTransaction(t domain.CashTransaction) models.CashTransaction {
	return models.CashTransaction{
		TransactionID: t.TransactionID,
		Direction:     string(t.Direction),
		Amount:        t.Amount,
		Counterparty:  t.Counterparty,
		Date:          t.Date,
		Note:          t.Note,
		Category:      t.Category,
		AuditFields:   toModelAudit(t.AuditFields),
	}
}

// ToDomainTransaction converts a row model to a domain cash transaction.
func ToDomainTransaction(t models.CashTransaction) domain.CashTransaction {
	return domain.CashTransaction{
		TransactionID: t.TransactionID,
		Direction:     domain.FlowDirection(t.Direction),
		Amount:        t.Amount,
		Counterparty:  t.Counterparty,
		Date:          t.Date,
		Note:          t.Note,
		Category:      t.Category,
		AuditFields:   toDomainAudit(t.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of row models.
func ToDomainTransactionSlice(rows []models.CashTransaction) []domain.CashTransaction {
	out := make([]domain.CashTransaction, len(rows))
	for i, r := range rows {
		out[i] = ToDomainTransaction(r)
	}
	return out
}

// ToModelCategory converts a domain category to its row model.
func ToModelCategory(c domain.Category) models.Category {
	return models.Category{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		AppliesTo:   string(c.AppliesTo),
		AuditFields: toModelAudit(c.AuditFields),
	}
}

// ToDomainCategory converts a row model to a domain category.
func ToDomainCategory(c models.Category) domain.Category {
	return domain.Category{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		AppliesTo:   domain.CategoryScope(c.AppliesTo),
		AuditFields: toDomainAudit(c.AuditFields),
	}
}

// ToModelDebt converts a domain debt to its row model.
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:      d.DebtID,
		Name:        d.Name,
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		Status:      string(d.Status),
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainDebt converts a row model to a domain debt.
func ToDomainDebt(d models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:      d.DebtID,
		Name:        d.Name,
		Amount:      d.Amount,
		DueDate:     d.DueDate,
		Status:      domain.DebtStatus(d.Status),
		AuditFields: toDomainAudit(d.AuditFields),
	}
}

// ToModelEmployee converts a domain employee to its row model. Money lists
// are persisted separately.
func ToModelEmployee(e domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Class:       string(e.Class),
		Role:        e.Role,
		Salary:      e.Salary,
		DailyRate:   e.DailyRate,
		AvatarURL:   e.AvatarURL,
		AuditFields: toModelAudit(e.AuditFields),
	}
}

// ToDomainEmployee converts a row model to a domain employee without money
// lists.
func ToDomainEmployee(e models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Class:       domain.EmployeeClass(e.Class),
		Role:        e.Role,
		Salary:      e.Salary,
		DailyRate:   e.DailyRate,
		AvatarURL:   e.AvatarURL,
		AuditFields: toDomainAudit(e.AuditFields),
	}
}

// ToModelAdvance converts a domain wage advance to its row model.
func ToModelAdvance(a domain.WageAdvance) models.WageAdvance {
	return models.WageAdvance{
		AdvanceID:   a.AdvanceID,
		EmployeeID:  a.EmployeeID,
		Amount:      a.Amount,
		Date:        a.Date,
		AuditFields: toModelAudit(a.AuditFields),
	}
}

// ToDomainAdvance converts a row model to a domain wage advance.
func ToDomainAdvance(a models.WageAdvance) domain.WageAdvance {
	return domain.WageAdvance{
		AdvanceID:   a.AdvanceID,
		EmployeeID:  a.EmployeeID,
		Amount:      a.Amount,
		Date:        a.Date,
		AuditFields: toDomainAudit(a.AuditFields),
	}
}

// ToModelWithdrawal converts a domain owner withdrawal to its row model.
func ToModelWithdrawal(w domain.OwnerWithdrawal) models.OwnerWithdrawal {
	return models.OwnerWithdrawal{
		WithdrawalID: w.WithdrawalID,
		EmployeeID:   w.EmployeeID,
		Amount:       w.Amount,
		Date:         w.Date,
		Note:         w.Note,
		AuditFields:  toModelAudit(w.AuditFields),
	}
}

// ToDomainWithdrawal converts a row model to a domain owner withdrawal.
func ToDomainWithdrawal(w models.OwnerWithdrawal) domain.OwnerWithdrawal {
	return domain.OwnerWithdrawal{
		WithdrawalID: w.WithdrawalID,
		EmployeeID:   w.EmployeeID,
		Amount:       w.Amount,
		Date:         w.Date,
		Note:         w.Note,
		AuditFields:  toDomainAudit(w.AuditFields),
	}
}

// ToModelProject converts a domain project to its row model. Expenses are
// persisted separately.
func ToModelProject(p domain.Project) models.Project {
	return models.Project{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Budget:      p.Budget,
		Profit:      p.Profit,
		Finalized:   p.Finalized,
		AuditFields: toModelAudit(p.AuditFields),
	}
}

// ToDomainProject converts a row model to a domain project without
// expenses.
func ToDomainProject(p models.Project) domain.Project {
	return domain.Project{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Budget:      p.Budget,
		Profit:      p.Profit,
		Finalized:   p.Finalized,
		AuditFields: toDomainAudit(p.AuditFields),
	}
}

// ToModelExpense converts a domain project expense to its row model.
func ToModelExpense(e domain.ProjectExpense) models.ProjectExpense {
	return models.ProjectExpense{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		AuditFields: toModelAudit(e.AuditFields),
	}
}

// ToDomainExpense converts a row model to a domain project expense.
func ToDomainExpense(e models.ProjectExpense) domain.ProjectExpense {
	return domain.ProjectExpense{
		ExpenseID:   e.ExpenseID,
		ProjectID:   e.ProjectID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		AuditFields: toDomainAudit(e.AuditFields),
	}
}

// ToModelReceivable converts a domain receivable to its row model. Payments
// are persisted separately.
func ToModelReceivable(r domain.Receivable) models.Receivable {
	return models.Receivable{
		ReceivableID: r.ReceivableID,
		Customer:     r.Customer,
		TotalAmount:  r.TotalAmount,
		PaidAmount:   r.PaidAmount,
		AuditFields:  toModelAudit(r.AuditFields),
	}
}

// ToDomainReceivable converts a row model to a domain receivable without
// payments.
func ToDomainReceivable(r models.Receivable) domain.Receivable {
	return domain.Receivable{
		ReceivableID: r.ReceivableID,
		Customer:     r.Customer,
		TotalAmount:  r.TotalAmount,
		PaidAmount:   r.PaidAmount,
		AuditFields:  toDomainAudit(r.AuditFields),
	}
}

// ToModelPayment converts a domain payment to its row model.
func ToModelPayment(p domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:    p.PaymentID,
		ReceivableID: p.ReceivableID,
		Amount:       p.Amount,
		Date:         p.Date,
		AuditFields:  toModelAudit(p.AuditFields),
	}
}

// ToDomainPayment converts a row model to a domain payment.
func ToDomainPayment(p models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:    p.PaymentID,
		ReceivableID: p.ReceivableID,
		Amount:       p.Amount,
		Date:         p.Date,
		AuditFields:  toDomainAudit(p.AuditFields),
	}
}

// ToModelUser converts a domain user to its row model.
func ToModelUser(u domain.User) models.User {
	return models.User{
		UserID:       u.UserID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Email:        u.Email,
		Role:         string(u.Role),
		AvatarURL:    u.AvatarURL,
		AuditFields:  toModelAudit(u.AuditFields),
		DeletedAt:    u.DeletedAt,
	}
}

// ToDomainUser converts a row model to a domain user.
func ToDomainUser(u models.User) domain.User {
	return domain.User{
		UserID:       u.UserID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Email:        u.Email,
		Role:         domain.UserRole(u.Role),
		AvatarURL:    u.AvatarURL,
		AuditFields:  toDomainAudit(u.AuditFields),
		DeletedAt:    u.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of user row models.
func ToDomainUserSlice(rows []models.User) []domain.User {
	out := make([]domain.User, len(rows))
	for i, r := range rows {
		out[i] = ToDomainUser(r)
	}
	return out
}
