package appointment

import (
	"context"
	"math"

	domain "github.com/nerobarber/booking-api/internal/domain/appointment"
)

// ShopSummary backs the dashboard cards: volume, projected revenue over
// all booked services, and how far through the agenda the shop is.
type ShopSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`

	ProjectedRevenue float64 `json:"projected_revenue"`
	CompletionRate   int     `json:"completion_rate"`
}

type Summarize struct {
	repo domain.Repository
}

func NewSummarize(repo domain.Repository) *Summarize {
	return &Summarize{repo: repo}
}

func (uc *Summarize) Execute(
	ctx context.Context,
	barbershopID uint,
) (*ShopSummary, error) {

	aps, err := uc.repo.ListAppointmentsForShop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	sum := &ShopSummary{Total: len(aps)}
	for _, ap := range aps {
		switch domain.Status(ap.Status) {
		case domain.StatusPending:
			sum.Pending++
		case domain.StatusConfirmed:
			sum.Confirmed++
		case domain.StatusCompleted:
			sum.Completed++
		}
		sum.ProjectedRevenue += ap.Service.Price
	}

	if sum.Total > 0 {
		sum.CompletionRate = int(math.Round(float64(sum.Completed) / float64(sum.Total) * 100))
	}

	return sum, nil
}
