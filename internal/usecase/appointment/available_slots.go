package appointment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// USE CASE — AVAILABLE SLOTS
// ======================================================

type GetAvailableSlots struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	c *cache.Cache,
) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, cache: c}
}

// Execute devolve a grade livre do dia. O resultado é cacheado por
// pouco tempo; entrada velha só mente até expirar e nunca alimenta a
// validação de conflito.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	teamMemberID uint,
	date string,
) ([]string, error) {

	normalized, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetTeamMember(ctx, teamMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("team_member_not_found")
		}
		return nil, err
	}

	key := fmt.Sprintf("available_slots:%d:%s", teamMemberID, normalized)

	var slots []string
	if uc.cache.GetJSON(ctx, key, &slots) {
		return slots, nil
	}

	existing, err := uc.repo.ListActiveForDay(ctx, teamMemberID, normalized, 0)
	if err != nil {
		return nil, err
	}

	booked := make([]domain.Booked, 0, len(existing))
	for i := range existing {
		b, err := domain.BookedFrom(&existing[i])
		if err != nil {
			return nil, err
		}
		booked = append(booked, b)
	}

	slots = domain.AvailableSlots(booked)
	uc.cache.SetJSON(ctx, key, slots, cache.TTLAvailableSlots)

	return slots, nil
}
