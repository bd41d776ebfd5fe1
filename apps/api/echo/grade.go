package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core/grade"
)

type gradeApi struct {
	svc      grade.Service
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, svc grade.Service, validate *validator.Validate) {
	api := gradeApi{
		svc:      svc,
		validate: validate,
	}

	gg := g.Group("/grades")
	gg.POST("/needed", api.needed)
	gg.POST("/predict", api.predict)
	gg.POST("/weighted", api.weighted)
	gg.GET("/convert", api.convert)
	gg.GET("/suggestion", api.suggestion)
	gg.GET("/scale", api.scale)
}

// Handlers

func (api *gradeApi) needed(ctx echo.Context) error {
	var data grade.NeededGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NeededGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Needed(data))
}

func (api *gradeApi) predict(ctx echo.Context) error {
	var data grade.PredictedGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PredictedGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Predict(data))
}

func (api *gradeApi) weighted(ctx echo.Context) error {
	var data grade.WeightedGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WeightedGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Weighted(data))
}

func (api *gradeApi) convert(ctx echo.Context) error {
	var data grade.Conversion
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Conversion")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	res, err := api.svc.Convert(data)
	if err != nil {
		return errors.Wrap(err, "converting grade")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *gradeApi) suggestion(ctx echo.Context) error {
	var data grade.SuggestionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SuggestionRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	needed, err := strconv.ParseFloat(data.Needed, 64)
	if err != nil {
		return errors.Wrap(err, "parsing needed grade")
	}
	return ctx.JSON(http.StatusOK, api.svc.Suggest(needed))
}

func (api *gradeApi) scale(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Scale())
}
