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
	calendarUC "github.com/fadelaryap/agrione-v1-sub000/usecase/calendar"
	workorderUC "github.com/fadelaryap/agrione-v1-sub000/usecase/workorder"
)

type WorkOrderHandler struct {
	baseHandler
	uc       *workorderUC.UseCase
	calendar *calendarUC.UseCase
}

func NewWorkOrderHandler(uc *workorderUC.UseCase, calendar *calendarUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *WorkOrderHandler {
	return &WorkOrderHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		calendar:    calendar,
	}
}

func (h *WorkOrderHandler) filter(ctx *fasthttp.RequestCtx) repository.WorkOrderFilter {
	return repository.WorkOrderFilter{
		FieldID:  string(ctx.QueryArgs().Peek("field_id")),
		SeasonID: string(ctx.QueryArgs().Peek("season_id")),
		Status:   string(ctx.QueryArgs().Peek("status")),
		Assignee: string(ctx.QueryArgs().Peek("assignee")),
		Search:   string(ctx.QueryArgs().Peek("search")),
		Limit:    parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset:   parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}
}

// @Summary List work orders
// @Tags work-orders
// @Router /api/v1/work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	orders, err := h.uc.List(stdCtx, h.filter(ctx))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, orders)
}

// @Summary Day-bucketed work order schedule
// @Tags work-orders
// @Router /api/v1/work-orders/schedule [get]
func (h *WorkOrderHandler) GetSchedule(ctx *fasthttp.RequestCtx) {
	today := time.Now()
	if raw := string(ctx.QueryArgs().Peek("today")); raw != "" {
		parsed, err := hst.ParseDay(raw)
		if err != nil {
			h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid today", err))
			return
		}
		today = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	schedule, err := h.calendar.Expand(stdCtx, h.filter(ctx), today)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, schedule)
}

// @Summary Get one work order
// @Tags work-orders
// @Router /api/v1/work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	order, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, order)
}

// @Summary Update a work order
// @Tags work-orders
// @Router /api/v1/work-orders/{id} [put]
func (h *WorkOrderHandler) UpdateWorkOrder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.WorkOrderUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	input := workorderUC.UpdateInput{
		Status:      req.Status,
		Assignee:    req.Assignee,
		Progress:    req.Progress,
		Description: req.Description,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, id, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a work order
// @Tags work-orders
// @Router /api/v1/work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
