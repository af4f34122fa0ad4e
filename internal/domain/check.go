package domain

// UserEntries holds what the student typed, already parsed. Missing accounts read as zero.
type UserEntries map[AccountKey]Amounts

// FieldResult is the grading of a single account row.
type FieldResult struct {
	Account       AccountKey `json:"account"`
	Label         string     `json:"label"`
	Entered       Amounts    `json:"entered"`
	DebitCorrect  bool       `json:"cargo_correct"`
	CreditCorrect bool       `json:"abono_correct"`
}

// Correct reports whether both sides of the row match the answer key.
func (f FieldResult) Correct() bool {
	return f.DebitCorrect && f.CreditCorrect
}

// CheckResult is the outcome of grading one set of entries.
type CheckResult struct {
	Fields      []FieldResult `json:"fields"`
	Score       int           `json:"score"`
	Possible    int           `json:"possible"`
	TotalDebit  int64         `json:"total_cargo"`
	TotalCredit int64         `json:"total_abono"`
	Balance     int64         `json:"saldo_final"` // TotalDebit - TotalCredit
	Passed      bool          `json:"passed"`
}

// Field returns the row result for the account.
func (r CheckResult) Field(account AccountKey) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Account == account {
			return f, true
		}
	}

	return FieldResult{}, false
}
