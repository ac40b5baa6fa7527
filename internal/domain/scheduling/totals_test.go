package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestTotalPrice(t *testing.T) {
	services := []models.Service{
		{Price: 45.50, DurationMinutes: 30},
		{Price: 80, DurationMinutes: 60},
	}

	assert.Equal(t, 125.50, TotalPrice(services))
	assert.Equal(t, float64(0), TotalPrice(nil))
}

func TestTotalPrice_RoundsToCents(t *testing.T) {
	services := []models.Service{
		{Price: 10.10},
		{Price: 20.20},
	}

	assert.Equal(t, 30.30, TotalPrice(services))
}

func TestTotalPrice_Idempotent(t *testing.T) {
	services := []models.Service{{Price: 33.33}, {Price: 66.67}}

	first := TotalPrice(services)
	second := TotalPrice(services)

	assert.Equal(t, first, second)
	assert.Equal(t, 100.00, first)
}

func TestTotalDuration(t *testing.T) {
	services := []models.Service{
		{DurationMinutes: 30},
		{DurationMinutes: 45},
		{DurationMinutes: 0},
	}

	assert.Equal(t, 75, TotalDuration(services))
	assert.Equal(t, 0, TotalDuration(nil))
}
