package services

import (
	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
	"github.com/kbouri/performup-platform-sub000/internal/platform/config"
	"github.com/kbouri/performup-platform-sub000/internal/platform/metrics"
	"github.com/kbouri/performup-platform-sub000/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	base := BaseService{Metrics: m}

	container := &portssvc.ServiceContainer{}

	// Reference numbers first; the journal allocates them inside its write units.
	container.Reference = NewReferenceService(repos.SequenceRepo, base)

	container.Validation = NewValidationService(
		repos.BankAccountRepo,
		repos.PaymentRepo,
		base,
		WithAmountFormatter(utils.NewAmountFormatter(cfg.AmountLocale)),
	)

	var journalOpts []JournalOption
	if repos.BalanceCache != nil {
		journalOpts = append(journalOpts, WithBalanceCache(repos.BalanceCache))
	}
	container.Journal = NewJournalService(
		repos.TransactionRepo,
		repos.BankAccountRepo,
		repos.MissionRepo,
		container.Reference,
		container.Validation,
		base,
		journalOpts...,
	)

	return container
}
