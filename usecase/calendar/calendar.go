package calendar

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fadelaryap/agrione-v1-sub000/domain"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/hst"
	"github.com/fadelaryap/agrione-v1-sub000/repository"
)

// DayBucket collects every work order active on one calendar day. An order
// spanning several days appears in each day's bucket, once per bucket.
type DayBucket struct {
	Date       time.Time          `json:"date"`
	Day        string             `json:"day"`
	WorkOrders []domain.WorkOrder `json:"work_orders"`
}

// Schedule is the day-bucketed calendar view of a set of work orders.
// Past buckets are ordered newest first, upcoming buckets oldest first, so
// both lists read outward from today.
type Schedule struct {
	Past     []DayBucket `json:"past"`
	Upcoming []DayBucket `json:"upcoming"`
	// DefaultExpanded names the bucket a client should open initially:
	// today when present, otherwise the earliest upcoming day.
	DefaultExpanded string `json:"default_expanded,omitempty"`
}

type UseCase struct {
	orders repository.WorkOrderRepository
	logger *zap.Logger
}

func New(orders repository.WorkOrderRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{orders: orders, logger: logger}
}

// Expand lists the matching work orders and spreads each one over its
// inclusive date range. Orders without any date are left out of the view.
func (uc *UseCase) Expand(ctx context.Context, filter repository.WorkOrderFilter, today time.Time) (*Schedule, error) {
	orders, err := uc.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return BuildSchedule(orders, today), nil
}

// BuildSchedule buckets the given orders by calendar day relative to today.
func BuildSchedule(orders []domain.WorkOrder, today time.Time) *Schedule {
	today = hst.Day(today)

	buckets := make(map[string]*DayBucket)
	seen := make(map[string]map[string]bool)

	for _, order := range orders {
		if !order.IsDated() {
			continue
		}

		start, end := orderSpan(&order)
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			key := hst.FormatDay(day)
			bucket, ok := buckets[key]
			if !ok {
				bucket = &DayBucket{Date: day, Day: key}
				buckets[key] = bucket
				seen[key] = make(map[string]bool)
			}
			if seen[key][order.ID] {
				continue
			}
			seen[key][order.ID] = true
			bucket.WorkOrders = append(bucket.WorkOrders, order)
		}
	}

	schedule := &Schedule{}
	for _, bucket := range buckets {
		if bucket.Date.Before(today) {
			schedule.Past = append(schedule.Past, *bucket)
		} else {
			schedule.Upcoming = append(schedule.Upcoming, *bucket)
		}
	}

	sort.Slice(schedule.Past, func(i, j int) bool {
		return schedule.Past[i].Date.After(schedule.Past[j].Date)
	})
	sort.Slice(schedule.Upcoming, func(i, j int) bool {
		return schedule.Upcoming[i].Date.Before(schedule.Upcoming[j].Date)
	})

	if len(schedule.Upcoming) > 0 {
		schedule.DefaultExpanded = schedule.Upcoming[0].Day
	}

	return schedule
}

// orderSpan normalizes the inclusive day range of an order. A missing start
// or end collapses the span to the single known day.
func orderSpan(order *domain.WorkOrder) (time.Time, time.Time) {
	var start, end time.Time
	switch {
	case order.StartDate != nil && order.EndDate != nil:
		start, end = hst.Day(*order.StartDate), hst.Day(*order.EndDate)
	case order.StartDate != nil:
		start = hst.Day(*order.StartDate)
		end = start
	default:
		end = hst.Day(*order.EndDate)
		start = end
	}
	if end.Before(start) {
		end = start
	}
	return start, end
}
