package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Debt        DebtSvcFacade
	Employee    EmployeeSvcFacade
	Project     ProjectSvcFacade
	Receivable  ReceivableSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleAuth  GoogleOAuthSvcFacade
	Reporting   ReportingSvcFacade
}
