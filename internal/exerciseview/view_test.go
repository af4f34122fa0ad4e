package exerciseview

import (
	"bytes"
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/ledger-quiz/internal/answerkey"
	"github.com/go-petr/ledger-quiz/internal/checkservice"
	"github.com/go-petr/ledger-quiz/internal/domain"
	"github.com/go-petr/ledger-quiz/pkg/currencypkg"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	f, err := currencypkg.NewFormatter("es-MX", currencypkg.MXN)
	require.NoError(t, err)

	return New(f)
}

func TestBlank(t *testing.T) {
	r := newRenderer(t)
	key := answerkey.Default()

	p := r.Blank(key, false)

	require.Len(t, p.Rows, key.Len())
	require.Equal(t, "cargo_bancos", p.Rows[0].Cargo.Name)
	require.Equal(t, "abono_bancos", p.Rows[0].Abono.Name)

	for _, row := range p.Rows {
		require.Empty(t, row.Cargo.Value)
		require.Empty(t, row.Cargo.Class)
		require.Empty(t, row.Abono.Class)
	}

	require.Equal(t, Total{}, p.TotalCargo)
	require.Equal(t, Total{}, p.SaldoFinal)
	require.Empty(t, p.Feedback)
	require.Empty(t, p.FeedbackClass)

	require.False(t, p.Instructions.Visible)
	require.Equal(t, "Mostrar Instrucciones", p.Instructions.ButtonText)

	shown := r.Blank(key, true)
	require.True(t, shown.Instructions.Visible)
	require.Equal(t, "Ocultar Instrucciones", shown.Instructions.ButtonText)
}

func TestChecked(t *testing.T) {
	r := newRenderer(t)
	key := answerkey.Default()

	raw := map[domain.AccountKey]RawAmounts{
		domain.Bancos:      {Cargo: "850000"},
		domain.Proveedores: {Abono: "17,700"},
		domain.Maquinaria:  {Cargo: "120000"},
		domain.Zaza:        {Cargo: "25000"},
		domain.Viaticos:    {Cargo: "70000"},
	}

	entries := domain.UserEntries{}
	for k, v := range raw {
		entries[k] = domain.Amounts{
			Debit:  currencypkg.ParseText(v.Cargo),
			Credit: currencypkg.ParseText(v.Abono),
		}
	}

	res := checkservice.New(key).Check(context.Background(), entries)
	p := r.Checked(key, raw, res, false)

	require.Equal(t, "850,000", p.Rows[0].Cargo.Value)
	require.Equal(t, "", p.Rows[0].Abono.Value)
	require.Equal(t, ClassCorrect, p.Rows[0].Cargo.Class)
	require.Equal(t, ClassCorrect, p.Rows[0].Abono.Class)

	via := p.Rows[4]
	require.Equal(t, domain.Viaticos, via.Account)
	require.Equal(t, ClassIncorrect, via.Cargo.Class)
	require.Equal(t, ClassIncorrect, via.Abono.Class)

	require.Equal(t, Total{Value: "$1,065,000.00", Active: true}, p.TotalCargo)
	require.Equal(t, Total{Value: "$17,700.00", Active: true}, p.TotalAbono)
	require.Equal(t, Total{Value: "$1,047,300.00", Active: true}, p.SaldoFinal)

	require.Equal(t, "Sigue intentando. Obtuviste 4 de 5 aciertos. Revisa las celdas en rojo.", p.Feedback)
	require.Equal(t, ClassFeedbackIncorrect, p.FeedbackClass)
	require.True(t, p.Checked)
}

func TestFilled(t *testing.T) {
	r := newRenderer(t)
	key := answerkey.Default()

	raw := map[domain.AccountKey]RawAmounts{
		domain.Bancos: {Cargo: "850000", Abono: "abc"},
	}

	p := r.Filled(key, raw, true)

	require.Equal(t, "850,000", p.Rows[0].Cargo.Value)
	require.Empty(t, p.Rows[0].Abono.Value)
	require.Empty(t, p.Rows[0].Cargo.Class)
	require.Equal(t, Total{}, p.TotalCargo)
	require.Empty(t, p.Feedback)
	require.False(t, p.Checked)
	require.True(t, p.Instructions.Visible)

	var buf bytes.Buffer
	tmpl, err := Template()
	require.NoError(t, err)
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, p))
	require.Contains(t, buf.String(), `value="toggle"`)
	require.NotContains(t, buf.String(), `name="checked"`)
}

func TestFeedback(t *testing.T) {
	msg, class := Feedback(domain.CheckResult{Score: 5, Possible: 5, Passed: true})
	require.Equal(t, "¡Excelente! Obtuviste 5 de 5 aciertos. ✨", msg)
	require.Equal(t, ClassFeedbackCorrect, class)

	msg, class = Feedback(domain.CheckResult{Score: 0, Possible: 5})
	require.Equal(t, "Sigue intentando. Obtuviste 0 de 5 aciertos. Revisa las celdas en rojo.", msg)
	require.Equal(t, ClassFeedbackIncorrect, class)
}

func TestTemplate(t *testing.T) {
	r := newRenderer(t)

	tmpl, err := Template()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, PageTemplate, r.Blank(answerkey.Default(), false))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `name="cargo_bancos"`)
	require.Contains(t, out, `name="abono_via"`)
	require.Contains(t, out, `id="instructionsContent" class="hidden"`)
	require.Contains(t, out, "Viáticos")
}

func TestStatic(t *testing.T) {
	b, err := fs.ReadFile(Static(), "exercise.css")
	require.NoError(t, err)
	require.Contains(t, string(b), ".input-correct")
}
