// Package checkdelivery manages delivery layer of the exercise: the html page and the json api.
package checkdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/ledger-quiz/internal/domain"
	"github.com/go-petr/ledger-quiz/internal/exerciseview"
	"github.com/go-petr/ledger-quiz/internal/reportexport"
	"github.com/go-petr/ledger-quiz/pkg/currencypkg"
	"github.com/go-petr/ledger-quiz/pkg/errorspkg"
	"github.com/go-petr/ledger-quiz/pkg/web"
)

// Service provides service layer interface needed by check delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package checkdelivery
type Service interface {
	Check(ctx context.Context, entries domain.UserEntries) domain.CheckResult
	AnswerKey() domain.AnswerKey
}

// Form actions of the exercise page.
const (
	ActionCheck  = "check"
	ActionReset  = "reset"
	ActionToggle = "toggle"
)

// Handler facilitates check delivery layer logic.
type Handler struct {
	service   Service
	renderer  *exerciseview.Renderer
	formatter currencypkg.Formatter
}

// NewHandler returns check handler.
func NewHandler(s Service, r *exerciseview.Renderer, f currencypkg.Formatter) *Handler {
	return &Handler{
		service:   s,
		renderer:  r,
		formatter: f,
	}
}

// ValidAccountKey validates that a map key belongs to the answer key.
func ValidAccountKey(key domain.AnswerKey) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return key.Has(domain.AccountKey(fl.Field().String()))
	}
}

func parseEntries(raw map[domain.AccountKey]exerciseview.RawAmounts) domain.UserEntries {
	entries := make(domain.UserEntries, len(raw))
	for k, v := range raw {
		entries[k] = domain.Amounts{
			Debit:  currencypkg.ParseText(v.Cargo),
			Credit: currencypkg.ParseText(v.Abono),
		}
	}

	return entries
}

func bindError(gctx *gin.Context, l *zerolog.Logger, err error) {
	l.Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})
		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(errorspkg.ErrBadRequest))
}

// Page renders the blank exercise.
func (h *Handler) Page(gctx *gin.Context) {
	show := gctx.Query("instructions") == "show"

	gctx.HTML(http.StatusOK, exerciseview.PageTemplate, h.renderer.Blank(h.service.AnswerKey(), show))
}

// Submit handles the exercise form: the check button grades it, the reset button clears it
// and the instructions button flips the panel keeping the inputs and any grading.
func (h *Handler) Submit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	key := h.service.AnswerKey()
	action := gctx.PostForm("action")
	show := gctx.PostForm("instructions") == "show"

	if action == ActionToggle {
		show = !show
	}

	if action == ActionReset {
		l.Debug().Msg("exercise reset")
		gctx.HTML(http.StatusOK, exerciseview.PageTemplate, h.renderer.Blank(key, show))

		return
	}

	raw := make(map[domain.AccountKey]exerciseview.RawAmounts, key.Len())
	for _, k := range key.Keys() {
		raw[k] = exerciseview.RawAmounts{
			Cargo: gctx.PostForm(exerciseview.CargoField(k)),
			Abono: gctx.PostForm(exerciseview.AbonoField(k)),
		}
	}

	if action == ActionToggle && gctx.PostForm("checked") == "" {
		gctx.HTML(http.StatusOK, exerciseview.PageTemplate, h.renderer.Filled(key, raw, show))
		return
	}

	res := h.service.Check(ctx, parseEntries(raw))

	gctx.HTML(http.StatusOK, exerciseview.PageTemplate, h.renderer.Checked(key, raw, res, show))
}

type checkRequest struct {
	Entries map[domain.AccountKey]exerciseview.RawAmounts `json:"entries" binding:"required,dive,keys,accountkey,endkeys"`
}

type display struct {
	TotalCargo string `json:"total_cargo"`
	TotalAbono string `json:"total_abono"`
	SaldoFinal string `json:"saldo_final"`
}

type checkData struct {
	Result   domain.CheckResult `json:"result"`
	Display  display            `json:"display"`
	Feedback string             `json:"feedback"`
}

type checkResponse struct {
	Data checkData `json:"data,omitempty"`
}

// Check handles http request to grade entries.
func (h *Handler) Check(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req checkRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, l, err)
		return
	}

	res := h.service.Check(ctx, parseEntries(req.Entries))
	feedback, _ := exerciseview.Feedback(res)

	gctx.JSON(http.StatusOK, checkResponse{
		Data: checkData{
			Result: res,
			Display: display{
				TotalCargo: h.formatter.Money(res.TotalDebit),
				TotalAbono: h.formatter.Money(res.TotalCredit),
				SaldoFinal: h.formatter.Money(res.Balance),
			},
			Feedback: feedback,
		},
	})
}

// Export handles http request to grade entries and download the result as a workbook.
func (h *Handler) Export(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req checkRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, l, err)
		return
	}

	res := h.service.Check(ctx, parseEntries(req.Entries))

	buf, err := reportexport.Workbook(res, h.formatter)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Header("Content-Disposition", `attachment; filename="resultados.xlsx"`)
	gctx.Data(http.StatusOK, reportexport.ContentType, buf.Bytes())
}

type formatRequest struct {
	Raw      string `json:"raw" binding:"max=64"`
	Currency string `json:"currency" binding:"omitempty,currency"`
}

type formatData struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
	Money   string `json:"money"`
}

type formatResponse struct {
	Data formatData `json:"data,omitempty"`
}

// Format handles http request to normalize the text of one input field.
func (h *Handler) Format(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req formatRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, l, err)
		return
	}

	f := h.formatter
	if req.Currency != "" && req.Currency != f.Currency() {
		var err error
		if f, err = f.WithCurrency(req.Currency); err != nil {
			l.Error().Err(err).Send()
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

			return
		}
	}

	amount := currencypkg.ParseText(req.Raw)

	gctx.JSON(http.StatusOK, formatResponse{
		Data: formatData{
			Amount:  amount,
			Display: f.Echo(req.Raw),
			Money:   f.Money(amount),
		},
	})
}
