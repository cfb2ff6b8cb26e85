package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fadelaryap/agrione-v1-sub000/api/transport"
	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/httpcontext"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
	cultivationUC "github.com/fadelaryap/agrione-v1-sub000/usecase/cultivation"
)

type SeasonHandler struct {
	baseHandler
	uc *cultivationUC.UseCase
}

func NewSeasonHandler(uc *cultivationUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SeasonHandler {
	return &SeasonHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List cultivation seasons
// @Tags seasons
// @Router /api/v1/seasons [get]
func (h *SeasonHandler) ListSeasons(ctx *fasthttp.RequestCtx) {
	filter := repository.SeasonFilter{
		FieldID: string(ctx.QueryArgs().Peek("field_id")),
		Status:  string(ctx.QueryArgs().Peek("status")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	seasons, err := h.uc.ListSeasons(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, seasons)
}

// @Summary Get one cultivation season
// @Tags seasons
// @Router /api/v1/seasons/{id} [get]
func (h *SeasonHandler) GetSeason(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	season, err := h.uc.GetSeason(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, season)
}

// @Summary Start a cultivation season on one field
// @Tags seasons
// @Router /api/v1/seasons [post]
func (h *SeasonHandler) Materialize(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.MaterializeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	input, err := h.materializeInput(req.FieldID, req.PlantingDate, req.Activities, req.Notes, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Materialize(stdCtx, *input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary Start a cultivation season on several fields
// @Tags seasons
// @Router /api/v1/seasons/batch [post]
func (h *SeasonHandler) MaterializeBatch(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.BatchMaterializeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	input, err := h.materializeInput("", req.PlantingDate, req.Activities, req.Notes, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.MaterializeBatch(stdCtx, req.FieldIDs, *input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	status := http.StatusCreated
	if len(result.Failures) > 0 {
		status = http.StatusMultiStatus
	}
	h.respondSuccess(ctx, status, result)
}

// @Summary Complete an active season
// @Tags seasons
// @Router /api/v1/seasons/{id}/complete [post]
func (h *SeasonHandler) CompleteSeason(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.CompleteSeasonRequest
	if len(ctx.PostBody()) > 0 {
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			h.respondError(ctx, domain.ErrInvalidPayload)
			return
		}
	}

	var completed time.Time
	if req.CompletedDate != "" {
		parsed, err := hst.ParseDay(req.CompletedDate)
		if err != nil {
			h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid completed_date", err))
			return
		}
		completed = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	season, err := h.uc.CompleteSeason(stdCtx, id, completed, req.Notes)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, season)
}

// @Summary Delete a season without work orders
// @Tags seasons
// @Router /api/v1/seasons/{id} [delete]
func (h *SeasonHandler) DeleteSeason(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteSeason(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *SeasonHandler) materializeInput(fieldID, plantingDate string, activities []transport.ActivityRequest, notes, userID string) (*cultivationUC.MaterializeInput, error) {
	planting, err := hst.ParseDay(plantingDate)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid planting_date", err)
	}

	converted := make([]domain.Activity, 0, len(activities))
	for i := range activities {
		activity, err := activities[i].ToActivity()
		if err != nil {
			return nil, err
		}
		if activity.Category == "" {
			activity.Category, _ = domain.CategoryOf(activity.Kind)
		}
		converted = append(converted, *activity)
	}

	return &cultivationUC.MaterializeInput{
		FieldID:      fieldID,
		PlantingDate: planting,
		Activities:   converted,
		Notes:        notes,
		CreatedBy:    userID,
	}, nil
}
