package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// USE CASE — COMPUTE TOTALS
// ======================================================

type Totals struct {
	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration"`
}

type ComputeTotals struct {
	repo domain.Repository
}

func NewComputeTotals(repo domain.Repository) *ComputeTotals {
	return &ComputeTotals{repo: repo}
}

// Execute soma preço e duração sobre os serviços anexados agora. É uma
// leitura pura: não mexe no snapshot de total_price gravado no registro.
func (uc *ComputeTotals) Execute(
	ctx context.Context,
	appointmentID uint,
) (*Totals, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &Totals{
		TotalPrice:    domain.TotalPrice(ap.Services),
		TotalDuration: domain.TotalDuration(ap.Services),
	}, nil
}
