package services

// ServiceContainer holds instances of all the application services.
// Handlers only depend on these interfaces.
type ServiceContainer struct {
	Journal    JournalSvcFacade
	Validation ValidationSvcFacade
	Reference  ReferenceSvc
}
