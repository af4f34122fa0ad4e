package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAnswerKey(t *testing.T) {
	testCases := []struct {
		name    string
		entries []ExpectedEntry
		wantErr error
	}{
		{
			name:    "Empty",
			wantErr: ErrEmptyAnswerKey,
		},
		{
			name: "EmptyKey",
			entries: []ExpectedEntry{
				{Account: "", Amounts: Amounts{Debit: 1}},
			},
			wantErr: ErrInvalidAccountKey,
		},
		{
			name: "Duplicate",
			entries: []ExpectedEntry{
				{Account: Bancos, Amounts: Amounts{Debit: 1}},
				{Account: Bancos, Amounts: Amounts{Credit: 1}},
			},
			wantErr: ErrDuplicateAccount,
		},
		{
			name: "Negative",
			entries: []ExpectedEntry{
				{Account: Bancos, Amounts: Amounts{Debit: -1}},
			},
			wantErr: ErrNegativeExpected,
		},
		{
			name: "OK",
			entries: []ExpectedEntry{
				{Account: Bancos, Label: "Bancos", Amounts: Amounts{Debit: 850000}},
				{Account: Proveedores, Amounts: Amounts{Credit: 17700}},
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, err := NewAnswerKey(tc.entries...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, len(tc.entries), key.Len())
		})
	}
}

func TestAnswerKeyAccessors(t *testing.T) {
	key, err := NewAnswerKey(
		ExpectedEntry{Account: Bancos, Label: "Bancos", Amounts: Amounts{Debit: 850000}},
		ExpectedEntry{Account: Proveedores, Amounts: Amounts{Credit: 17700}},
	)
	require.NoError(t, err)

	require.Equal(t, []AccountKey{Bancos, Proveedores}, key.Keys())
	require.True(t, key.Has(Bancos))
	require.False(t, key.Has(Zaza))

	got, ok := key.Expected(Proveedores)
	require.True(t, ok)
	require.Equal(t, Amounts{Credit: 17700}, got)

	_, ok = key.Expected(Zaza)
	require.False(t, ok)

	// Label falls back to the key.
	entries := key.Entries()
	require.Equal(t, "prov", entries[1].Label)

	// Callers cannot mutate the key through the returned slice.
	entries[0].Debit = 1
	got, _ = key.Expected(Bancos)
	require.EqualValues(t, 850000, got.Debit)
}
