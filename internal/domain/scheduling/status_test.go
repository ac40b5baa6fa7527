package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{
		StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("done").Valid())
	assert.False(t, Status("Scheduled").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	assert.False(t, StatusScheduled.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.False(t, StatusNoShow.Terminal())
}

func TestActiveStatusStrings(t *testing.T) {
	assert.Equal(t, []string{"scheduled", "confirmed", "in_progress"}, ActiveStatusStrings())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus())
}
