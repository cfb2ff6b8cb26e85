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
	planningUC "github.com/fadelaryap/agrione-v1-sub000/usecase/planning"
)

type PlanningHandler struct {
	baseHandler
	uc *planningUC.UseCase
}

func NewPlanningHandler(uc *planningUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlanningHandler {
	return &PlanningHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Activity catalog
// @Tags planning
// @Router /api/v1/planning/catalog [get]
func (h *PlanningHandler) GetCatalog(ctx *fasthttp.RequestCtx) {
	type entry struct {
		Kind     domain.ActivityKind     `json:"kind"`
		Category domain.ActivityCategory `json:"category"`
	}
	kinds := domain.CatalogKinds()
	catalog := make([]entry, 0, len(kinds))
	for _, kind := range kinds {
		category, _ := domain.CategoryOf(kind)
		catalog = append(catalog, entry{Kind: kind, Category: category})
	}
	h.respondSuccess(ctx, http.StatusOK, catalog)
}

// @Summary Default cultivation template for a planting date
// @Tags planning
// @Router /api/v1/planning/templates/default [get]
func (h *PlanningHandler) GetDefaultTemplate(ctx *fasthttp.RequestCtx) {
	planting, ok := h.plantingDateArg(ctx)
	if !ok {
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.uc.DefaultTemplate(planting))
}

// @Summary Re-anchor a template to a new planting date
// @Tags planning
// @Router /api/v1/planning/templates/recalculate [post]
func (h *PlanningHandler) Recalculate(ctx *fasthttp.RequestCtx) {
	var req transport.RecalculateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	tmpl, err := req.Template.ToTemplate()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	planting, err := hst.ParseDay(req.PlantingDate)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid planting_date", err))
		return
	}

	recalculated, err := h.uc.Recalculate(tmpl, planting)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, recalculated)
}

// @Summary Add a custom activity to a working template
// @Tags planning
// @Router /api/v1/planning/templates/activities [post]
func (h *PlanningHandler) AddActivity(ctx *fasthttp.RequestCtx) {
	var req transport.AddActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	tmpl, err := req.Template.ToTemplate()
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	activity, err := req.Activity.ToActivity()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.uc.AddActivity(tmpl, activity); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tmpl)
}

// @Summary Save a named template
// @Tags planning
// @Router /api/v1/planning/templates [post]
func (h *PlanningHandler) SaveTemplate(ctx *fasthttp.RequestCtx) {
	var req transport.TemplateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	tmpl, err := req.ToTemplate()
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	saved, err := h.uc.SaveTemplate(stdCtx, tmpl)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, saved)
}

// @Summary List saved templates
// @Tags planning
// @Router /api/v1/planning/templates [get]
func (h *PlanningHandler) ListTemplates(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	templates, err := h.uc.ListTemplates(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, templates)
}

// @Summary Get one saved template
// @Tags planning
// @Router /api/v1/planning/templates/{id} [get]
func (h *PlanningHandler) GetTemplate(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tmpl, err := h.uc.GetTemplate(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tmpl)
}

// @Summary Load a saved template re-anchored to a planting date
// @Tags planning
// @Router /api/v1/planning/templates/{id}/load [get]
func (h *PlanningHandler) LoadTemplate(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	planting, ok := h.plantingDateArg(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tmpl, err := h.uc.LoadTemplate(stdCtx, id, planting)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tmpl)
}

// @Summary Delete a saved template
// @Tags planning
// @Router /api/v1/planning/templates/{id} [delete]
func (h *PlanningHandler) DeleteTemplate(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTemplate(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *PlanningHandler) plantingDateArg(ctx *fasthttp.RequestCtx) (planting time.Time, ok bool) {
	raw := string(ctx.QueryArgs().Peek("planting_date"))
	if raw == "" {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "missing planting_date", domain.ErrInvalidDate))
		return planting, false
	}
	parsed, err := hst.ParseDay(raw)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid planting_date", err))
		return planting, false
	}
	return parsed, true
}
