package suggestions

import (
	"context"
	"continuity-engine/internal/app/contracts"
	"continuity-engine/internal/pkg/constvars"
	"continuity-engine/internal/pkg/dto/requests"
	"continuity-engine/internal/pkg/exceptions"
	"continuity-engine/internal/pkg/utils"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SuggestionController struct {
	Log               *zap.Logger
	SuggestionUsecase contracts.SuggestionUsecase
}

func NewSuggestionController(logger *zap.Logger, suggestionUsecase contracts.SuggestionUsecase) *SuggestionController {
	return &SuggestionController{
		Log:               logger,
		SuggestionUsecase: suggestionUsecase,
	}
}

func (ctrl *SuggestionController) CreateBillingSuggestion(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	// Bind body to request; an empty body means "use the diagnoses on record".
	request := new(requests.CreateBillingSuggestion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SuggestionUsecase.CreateBillingSuggestion(ctx, patientID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if response == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoBillingProgramMatchedMessage, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuggestionSuccessMessage, response)
}

func (ctrl *SuggestionController) ApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestionID := chi.URLParam(r, constvars.URLParamSuggestionID)
	if suggestionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamSuggestionID))
		return
	}

	request := new(requests.ApproveSuggestion)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SuggestionUsecase.Approve(ctx, suggestionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApproveSuggestionSuccessMessage, response)
}

func (ctrl *SuggestionController) RejectSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestionID := chi.URLParam(r, constvars.URLParamSuggestionID)
	if suggestionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamSuggestionID))
		return
	}

	request := new(requests.RejectSuggestion)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SuggestionUsecase.Reject(ctx, suggestionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RejectSuggestionSuccessMessage, response)
}

func (ctrl *SuggestionController) FindSuggestionByID(w http.ResponseWriter, r *http.Request) {
	suggestionID := chi.URLParam(r, constvars.URLParamSuggestionID)
	if suggestionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamSuggestionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SuggestionUsecase.FindSuggestionByID(ctx, suggestionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSuggestionSuccessMessage, response)
}

func (ctrl *SuggestionController) FindSuggestionHistory(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePositiveIntQuery(r.URL.Query().Get(constvars.QueryParamPage), constvars.DefaultHistoryPage)
	pageSize := utils.ParsePositiveIntQuery(r.URL.Query().Get(constvars.QueryParamPageSize), constvars.DefaultHistoryPageSize)
	filter := contracts.SuggestionFilter{
		PatientID: r.URL.Query().Get(constvars.QueryParamPatientID),
		Status:    r.URL.Query().Get(constvars.QueryParamStatus),
		Page:      page,
		PageSize:  pageSize,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.SuggestionUsecase.ListHistory(ctx, filter)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.FindSuggestionHistorySuccessMessage, pagination, response)
}
