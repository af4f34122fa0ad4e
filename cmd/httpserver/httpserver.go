// Package httpserver manages server creation and routing.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/ledger-quiz/internal/answerkey"
	"github.com/go-petr/ledger-quiz/internal/checkdelivery"
	"github.com/go-petr/ledger-quiz/internal/checkservice"
	"github.com/go-petr/ledger-quiz/internal/domain"
	"github.com/go-petr/ledger-quiz/internal/exerciseview"
	"github.com/go-petr/ledger-quiz/internal/middleware"
	"github.com/go-petr/ledger-quiz/pkg/configpkg"
	"github.com/go-petr/ledger-quiz/pkg/currencypkg"
)

// ErrUnknownExcludedAccount indicates an account in CREDIT_TOTAL_EXCLUDES that is not in the answer key.
var ErrUnknownExcludedAccount = errors.New("excluded account is not in the answer key")

// Server holds the answer key, handlers router and configuration.
type Server struct {
	AnswerKey domain.AnswerKey
	Engine    *gin.Engine
	Config    configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	key, err := answerkey.FromFile(config.AnswerKeyFile)
	if err != nil {
		return nil, err
	}

	var opts []checkservice.Option

	for _, k := range config.ExcludedFromCreditTotal() {
		if !key.Has(domain.AccountKey(k)) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExcludedAccount, k)
		}

		opts = append(opts, checkservice.WithCreditTotalExcludes(domain.AccountKey(k)))
	}

	if len(opts) > 0 {
		logger.Warn().Str("accounts", config.CreditTotalExcludes).Msg("accounts left out of the abono total")
	}

	formatter, err := currencypkg.NewFormatter(config.Locale, config.Currency)
	if err != nil {
		return nil, err
	}

	tmpl, err := exerciseview.Template()
	if err != nil {
		return nil, fmt.Errorf("cannot parse templates: %w", err)
	}

	checkService := checkservice.New(key, opts...)
	renderer := exerciseview.New(formatter)
	checkHandler := checkdelivery.NewHandler(checkService, renderer, formatter)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(exerciseview.Static()))

	engine.GET("/", checkHandler.Page)
	engine.POST("/", checkHandler.Submit)

	api := engine.Group("/api")
	api.POST("/check", checkHandler.Check)
	api.POST("/check/export", checkHandler.Export)
	api.POST("/format", checkHandler.Format)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			return nil, errors.New("cannot register currency validator")
		}

		if err := v.RegisterValidation("accountkey", checkdelivery.ValidAccountKey(key)); err != nil {
			return nil, errors.New("cannot register account key validator")
		}
	}

	server := &Server{
		AnswerKey: key,
		Engine:    engine,
		Config:    config,
	}

	return server, nil
}
