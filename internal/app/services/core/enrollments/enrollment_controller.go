package enrollments

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/exceptions"
	"continuity-engine/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EnrollmentController struct {
	Log               *zap.Logger
	EnrollmentUsecase contracts.EnrollmentUsecase
}

func NewEnrollmentController(logger *zap.Logger, enrollmentUsecase contracts.EnrollmentUsecase) *EnrollmentController {
	return &EnrollmentController{
		Log:               logger,
		EnrollmentUsecase: enrollmentUsecase,
	}
}

func (ctrl *EnrollmentController) FindEnrollmentsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EnrollmentUsecase.FindByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindEnrollmentsSuccessMessage, response)
}
