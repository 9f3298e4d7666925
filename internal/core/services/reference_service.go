package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	portsrepo "github.com/kbouri/performup-platform-sub000/internal/core/ports/repositories"
	portssvc "github.com/kbouri/performup-platform-sub000/internal/core/ports/services"
)

const (
	transactionRefKind   = "TXN"
	transactionRefDigits = 5
	quoteRefKind         = "QUOTE"
	quoteRefDigits       = 3
)

// referenceService allocates numbers from per-year counters. The prefix carries the
// year, so numbering restarts at 1 every January.
type referenceService struct {
	BaseService
	seqRepo portsrepo.SequenceRepository
}

// NewReferenceService creates a reference number generator.
func NewReferenceService(seqRepo portsrepo.SequenceRepository, base BaseService) portssvc.ReferenceSvc {
	return &referenceService{BaseService: base, seqRepo: seqRepo}
}

var _ portssvc.ReferenceSvc = (*referenceService)(nil)

func (s *referenceService) GenerateTransactionNumber(ctx context.Context) (string, error) {
	return s.next(ctx, nil, transactionRefKind, transactionRefDigits)
}

func (s *referenceService) GenerateQuoteNumber(ctx context.Context) (string, error) {
	return s.next(ctx, nil, quoteRefKind, quoteRefDigits)
}

func (s *referenceService) NextTransactionNumberInTx(ctx context.Context, tx pgx.Tx) (string, error) {
	return s.next(ctx, tx, transactionRefKind, transactionRefDigits)
}

func (s *referenceService) ResyncTransactionNumbers(ctx context.Context) error {
	prefix := referencePrefix(transactionRefKind, s.Now().Year())
	value, err := s.seqRepo.SyncSequenceWithTransactions(ctx, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to resync transaction counter", slog.String("prefix", prefix))
		return fmt.Errorf("failed to resync %s counter: %w", transactionRefKind, err)
	}
	s.LogInfo(ctx, "Transaction counter resynced", slog.String("prefix", prefix), slog.Int64("last_value", value))
	return nil
}

func (s *referenceService) next(ctx context.Context, tx pgx.Tx, kind string, digits int) (string, error) {
	prefix := referencePrefix(kind, s.Now().Year())
	value, err := s.seqRepo.NextSequenceValue(ctx, tx, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate reference number", slog.String("prefix", prefix))
		return "", fmt.Errorf("failed to allocate %s number: %w", kind, err)
	}
	return formatReference(prefix, value, digits), nil
}

func referencePrefix(kind string, year int) string {
	return fmt.Sprintf("%s-%d-", kind, year)
}

// formatReference zero-pads value to digits; larger values simply widen.
func formatReference(prefix string, value int64, digits int) string {
	return fmt.Sprintf("%s%0*d", prefix, digits, value)
}
