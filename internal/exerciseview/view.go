// Package exerciseview renders the exercise page: input echo, per cell
// highlighting, totals and feedback. It owns the html template and stylesheet.
package exerciseview

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-petr/ledger-quiz/internal/domain"
	"github.com/go-petr/ledger-quiz/pkg/currencypkg"
)

// PageTemplate is the name of the exercise page template.
const PageTemplate = "exercise.tmpl"

// CSS classes toggled on inputs, totals and the feedback area.
const (
	ClassCorrect           = "input-correct"
	ClassIncorrect         = "input-incorrect"
	ClassActive            = "active"
	ClassFeedbackCorrect   = "feedback-correct"
	ClassFeedbackIncorrect = "feedback-incorrect"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// RawAmounts is the text typed in the cargo and abono inputs of a row.
type RawAmounts struct {
	Cargo string `json:"cargo"`
	Abono string `json:"abono"`
}

// Cell is one input of the form.
type Cell struct {
	Name  string
	Value string
	Class string
}

// Row is one account of the form.
type Row struct {
	Account domain.AccountKey
	Label   string
	Cargo   Cell
	Abono   Cell
}

// Total is one of the totals cells.
type Total struct {
	Value  string
	Active bool
}

// Instructions holds the state of the instructions panel and its toggle button.
type Instructions struct {
	Visible    bool
	ButtonText string
	Icon       string
}

// Page is everything the template needs.
type Page struct {
	Rows          []Row
	TotalCargo    Total
	TotalAbono    Total
	SaldoFinal    Total
	Feedback      string
	FeedbackClass string
	Instructions  Instructions
	// Checked is set once the entries were graded, so a later toggle grades them again.
	Checked bool
}

// CargoField returns the form field name of the cargo input for the account.
func CargoField(account domain.AccountKey) string {
	return "cargo_" + string(account)
}

// AbonoField returns the form field name of the abono input for the account.
func AbonoField(account domain.AccountKey) string {
	return "abono_" + string(account)
}

// Renderer builds pages for the exercise.
type Renderer struct {
	formatter currencypkg.Formatter
}

// New returns a renderer formatting amounts with f.
func New(f currencypkg.Formatter) *Renderer {
	return &Renderer{formatter: f}
}

// Template parses the embedded page template.
func Template() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.tmpl")
}

// Static returns the stylesheet directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // static is embedded above
	}

	return sub
}

func instructions(visible bool) Instructions {
	if visible {
		return Instructions{
			Visible:    true,
			ButtonText: "Ocultar Instrucciones",
			Icon:       "fa-chevron-up",
		}
	}

	return Instructions{
		ButtonText: "Mostrar Instrucciones",
		Icon:       "fa-chevron-down",
	}
}

// Blank is the page after a reset: empty inputs, no highlighting, no totals.
func (r *Renderer) Blank(key domain.AnswerKey, showInstructions bool) Page {
	p := Page{
		Rows:         make([]Row, 0, key.Len()),
		Instructions: instructions(showInstructions),
	}

	for _, e := range key.Entries() {
		p.Rows = append(p.Rows, Row{
			Account: e.Account,
			Label:   e.Label,
			Cargo:   Cell{Name: CargoField(e.Account)},
			Abono:   Cell{Name: AbonoField(e.Account)},
		})
	}

	return p
}

func cellClass(correct bool) string {
	if correct {
		return ClassCorrect
	}

	return ClassIncorrect
}

// Filled is the page with raw echoed back formatted and nothing graded yet.
func (r *Renderer) Filled(key domain.AnswerKey, raw map[domain.AccountKey]RawAmounts, showInstructions bool) Page {
	p := r.Blank(key, showInstructions)

	for i := range p.Rows {
		row := &p.Rows[i]
		in := raw[row.Account]

		row.Cargo.Value = r.formatter.Echo(in.Cargo)
		row.Abono.Value = r.formatter.Echo(in.Abono)
	}

	return p
}

// Checked is the page after grading: raw is echoed back formatted and every
// cell is marked correct or incorrect.
func (r *Renderer) Checked(key domain.AnswerKey, raw map[domain.AccountKey]RawAmounts, res domain.CheckResult, showInstructions bool) Page {
	p := r.Filled(key, raw, showInstructions)
	p.Checked = true

	for i := range p.Rows {
		row := &p.Rows[i]

		if f, ok := res.Field(row.Account); ok {
			row.Cargo.Class = cellClass(f.DebitCorrect)
			row.Abono.Class = cellClass(f.CreditCorrect)
		}
	}

	p.TotalCargo = Total{Value: r.formatter.Money(res.TotalDebit), Active: true}
	p.TotalAbono = Total{Value: r.formatter.Money(res.TotalCredit), Active: true}
	p.SaldoFinal = Total{Value: r.formatter.Money(res.Balance), Active: true}
	p.Feedback, p.FeedbackClass = Feedback(res)

	return p
}

// Feedback returns the message shown under the form and its CSS class.
func Feedback(res domain.CheckResult) (string, string) {
	if res.Passed {
		return fmt.Sprintf("¡Excelente! Obtuviste %d de %d aciertos. ✨", res.Score, res.Possible), ClassFeedbackCorrect
	}

	return fmt.Sprintf("Sigue intentando. Obtuviste %d de %d aciertos. Revisa las celdas en rojo.", res.Score, res.Possible),
		ClassFeedbackIncorrect
}
