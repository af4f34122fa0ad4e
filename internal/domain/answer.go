// Package domain provides defenitions of all entities.
package domain

import "errors"

var (
	// ErrEmptyAnswerKey indicates that the answer key has no entries.
	ErrEmptyAnswerKey = errors.New("answer key has no entries")
	// ErrDuplicateAccount indicates that the same account appears twice in the answer key.
	ErrDuplicateAccount = errors.New("duplicated account in answer key")
	// ErrInvalidAccountKey indicates an empty account key.
	ErrInvalidAccountKey = errors.New("invalid account key")
	// ErrNegativeExpected indicates a negative expected amount.
	ErrNegativeExpected = errors.New("negative expected amount")
)

// AccountKey identifies one row of the exercise.
type AccountKey string

// Accounts of the default exercise.
const (
	Bancos      AccountKey = "bancos"
	Proveedores AccountKey = "prov"
	Maquinaria  AccountKey = "maq"
	Zaza        AccountKey = "zaza"
	Viaticos    AccountKey = "via"
)

// Amounts holds a cargo (debit) and abono (credit) pair in whole currency units.
type Amounts struct {
	Debit  int64 `json:"cargo"`
	Credit int64 `json:"abono"`
}

// ExpectedEntry is the correct cargo/abono pair for one account.
type ExpectedEntry struct {
	Account AccountKey `json:"account"`
	Label   string     `json:"label"`
	Amounts
}

// AnswerKey is the ordered, immutable set of expected entries.
type AnswerKey struct {
	entries []ExpectedEntry
	index   map[AccountKey]int
}

// NewAnswerKey validates entries and returns an answer key keeping their order.
func NewAnswerKey(entries ...ExpectedEntry) (AnswerKey, error) {
	if len(entries) == 0 {
		return AnswerKey{}, ErrEmptyAnswerKey
	}

	k := AnswerKey{
		entries: make([]ExpectedEntry, 0, len(entries)),
		index:   make(map[AccountKey]int, len(entries)),
	}

	for _, e := range entries {
		if e.Account == "" {
			return AnswerKey{}, ErrInvalidAccountKey
		}

		if _, ok := k.index[e.Account]; ok {
			return AnswerKey{}, ErrDuplicateAccount
		}

		if e.Debit < 0 || e.Credit < 0 {
			return AnswerKey{}, ErrNegativeExpected
		}

		if e.Label == "" {
			e.Label = string(e.Account)
		}

		k.index[e.Account] = len(k.entries)
		k.entries = append(k.entries, e)
	}

	return k, nil
}

// Len returns the number of accounts, which is also the highest possible score.
func (k AnswerKey) Len() int {
	return len(k.entries)
}

// Entries returns a copy of the expected entries in display order.
func (k AnswerKey) Entries() []ExpectedEntry {
	out := make([]ExpectedEntry, len(k.entries))
	copy(out, k.entries)

	return out
}

// Keys returns the account keys in display order.
func (k AnswerKey) Keys() []AccountKey {
	keys := make([]AccountKey, len(k.entries))
	for i, e := range k.entries {
		keys[i] = e.Account
	}

	return keys
}

// Expected returns the expected amounts for the account.
func (k AnswerKey) Expected(account AccountKey) (Amounts, bool) {
	i, ok := k.index[account]
	if !ok {
		return Amounts{}, false
	}

	return k.entries[i].Amounts, true
}

// Has reports whether the account belongs to the answer key.
func (k AnswerKey) Has(account AccountKey) bool {
	_, ok := k.index[account]
	return ok
}
