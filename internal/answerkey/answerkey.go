// Package answerkey provides the exercise answer key, built in or read from a yaml file.
package answerkey

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/go-petr/ledger-quiz/internal/domain"
)

type fileEntry struct {
	Key    string `mapstructure:"key"`
	Label  string `mapstructure:"label"`
	Debit  int64  `mapstructure:"debit"`
	Credit int64  `mapstructure:"credit"`
}

type file struct {
	Accounts []fileEntry `mapstructure:"accounts"`
}

// Default returns the answer key of the built-in exercise.
func Default() domain.AnswerKey {
	key, err := domain.NewAnswerKey(
		domain.ExpectedEntry{Account: domain.Bancos, Label: "Bancos", Amounts: domain.Amounts{Debit: 850000}},
		domain.ExpectedEntry{Account: domain.Proveedores, Label: "Proveedores", Amounts: domain.Amounts{Credit: 17700}},
		domain.ExpectedEntry{Account: domain.Maquinaria, Label: "Maquinaria", Amounts: domain.Amounts{Debit: 120000}},
		domain.ExpectedEntry{Account: domain.Zaza, Label: "Zaza", Amounts: domain.Amounts{Debit: 25000}},
		domain.ExpectedEntry{Account: domain.Viaticos, Label: "Viáticos", Amounts: domain.Amounts{Credit: 70000}},
	)
	if err != nil {
		panic(err) // the fixture above is valid
	}

	return key
}

// Load reads an answer key from a yaml file:
//
//	accounts:
//	  - key: bancos
//	    label: Bancos
//	    debit: 850000
//	    credit: 0
func Load(path string) (domain.AnswerKey, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return domain.AnswerKey{}, fmt.Errorf("read answer key %s: %w", path, err)
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return domain.AnswerKey{}, fmt.Errorf("decode answer key %s: %w", path, err)
	}

	entries := make([]domain.ExpectedEntry, 0, len(f.Accounts))
	for _, a := range f.Accounts {
		entries = append(entries, domain.ExpectedEntry{
			Account: domain.AccountKey(a.Key),
			Label:   a.Label,
			Amounts: domain.Amounts{Debit: a.Debit, Credit: a.Credit},
		})
	}

	key, err := domain.NewAnswerKey(entries...)
	if err != nil {
		return domain.AnswerKey{}, fmt.Errorf("answer key %s: %w", path, err)
	}

	return key, nil
}

// FromFile returns Load(path) or Default when path is empty.
func FromFile(path string) (domain.AnswerKey, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}
