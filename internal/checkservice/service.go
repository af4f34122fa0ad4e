// Package checkservice grades exercise entries against an answer key.
package checkservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/ledger-quiz/internal/domain"
)

// Option customizes the service.
type Option func(*Service)

// WithCreditTotalExcludes leaves the given accounts out of the abono total.
// Grading of the rows themselves is not affected.
func WithCreditTotalExcludes(accounts ...domain.AccountKey) Option {
	return func(s *Service) {
		for _, a := range accounts {
			s.creditExcluded[a] = true
		}
	}
}

// Service facilitates the answer checking logic.
type Service struct {
	key            domain.AnswerKey
	creditExcluded map[domain.AccountKey]bool
}

// New returns a checker for the given answer key.
func New(key domain.AnswerKey, opts ...Option) *Service {
	s := &Service{
		key:            key,
		creditExcluded: make(map[domain.AccountKey]bool),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AnswerKey returns the answer key used for grading.
func (s *Service) AnswerKey() domain.AnswerKey {
	return s.key
}

// Check compares entries against the answer key and totals them.
//
// Accounts missing from entries count as zero; accounts not in the answer key are ignored.
func (s *Service) Check(ctx context.Context, entries domain.UserEntries) domain.CheckResult {
	l := zerolog.Ctx(ctx)

	res := domain.CheckResult{
		Fields:   make([]domain.FieldResult, 0, s.key.Len()),
		Possible: s.key.Len(),
	}

	for _, want := range s.key.Entries() {
		got := entries[want.Account]

		f := domain.FieldResult{
			Account:       want.Account,
			Label:         want.Label,
			Entered:       got,
			DebitCorrect:  got.Debit == want.Debit,
			CreditCorrect: got.Credit == want.Credit,
		}

		if f.Correct() {
			res.Score++
		}

		res.TotalDebit += got.Debit
		if !s.creditExcluded[want.Account] {
			res.TotalCredit += got.Credit
		}

		res.Fields = append(res.Fields, f)
	}

	res.Balance = res.TotalDebit - res.TotalCredit
	res.Passed = res.Score == res.Possible

	l.Debug().
		Int("score", res.Score).
		Int("possible", res.Possible).
		Bool("passed", res.Passed).
		Msg("entries checked")

	return res
}
