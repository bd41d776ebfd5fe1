package testutil

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grade"
)

// NopLogger drops every log.
type NopLogger struct{}

var _ core.Logger = NopLogger{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Fatal(string, ...interface{}) {}

// NewConfig returns the Config used by tests: no debug, no rate limiting.
func NewConfig() *core.Config {
	return &core.Config{
		Env:      "TEST",
		TestMode: true,
		AppName:  "Final Grade Calculator",
		Build:    "test",
		Server: core.ServerConfig{
			Addr:            ":0",
			ShutdownTimeout: time.Second,
			AllowOrigins:    []string{"*"},
			RateWindow:      time.Minute,
		},
		Grade: core.GradeConfig{ProjectionStep: 5},
	}
}

// NewValidator returns a validator with all the app's tags & translations registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	grade.InitValidators(validate, translator)
	return validate, translator
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}
