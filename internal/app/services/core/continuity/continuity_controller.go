package continuity

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"continuity-engine/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContinuityController struct {
	Log               *zap.Logger
	ContinuityUsecase contracts.ContinuityUsecase
	InternalConfig    *config.InternalConfig
}

func NewContinuityController(logger *zap.Logger, continuityUsecase contracts.ContinuityUsecase, internalConfig *config.InternalConfig) *ContinuityController {
	return &ContinuityController{
		Log:               logger,
		ContinuityUsecase: continuityUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *ContinuityController) FindContinuityAdvice(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}
	templateID := r.URL.Query().Get(constvars.QueryParamTemplateID)

	validityWindow, err := utils.ParseValidityWindowHours(
		r.URL.Query().Get(constvars.QueryParamValidityWindowHours),
		ctrl.InternalConfig.Engine.DefaultValidityWindowInHours,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContinuityUsecase.AdviseReuse(ctx, patientID, templateID, validityWindow)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindContinuityAdviceSuccessMessage, response)
}

func (ctrl *ContinuityController) CreateContinuitySuggestion(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	validityWindow, err := utils.ParseValidityWindowHours(
		r.URL.Query().Get(constvars.QueryParamValidityWindowHours),
		ctrl.InternalConfig.Engine.DefaultValidityWindowInHours,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContinuityUsecase.CreateContinuitySuggestion(ctx, patientID, validityWindow)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if response == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoTemplateMatchedMessage, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuggestionSuccessMessage, response)
}

func (ctrl *ContinuityController) FindFreshMetrics(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	validityWindow, err := utils.ParseValidityWindowHours(
		r.URL.Query().Get(constvars.QueryParamValidityWindowHours),
		ctrl.InternalConfig.Engine.DefaultValidityWindowInHours,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ContinuityUsecase.ResolveFreshMetrics(ctx, patientID, validityWindow)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindFreshMetricsSuccessMessage, response)
}
