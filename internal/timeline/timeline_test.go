package timeline

import (
	"testing"
	"time"

	"or-control-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestMinutesSinceDayStart(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"day start", clockAt(7, 0), 0},
		{"mid morning", clockAt(10, 7), 187},
		{"just before midnight", clockAt(23, 59), 1019},
		{"midnight", clockAt(0, 0), 1020},
		{"early morning wraps to tail", clockAt(6, 30), 1410},
		{"last minute of the axis", clockAt(6, 59), 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesSinceDayStart(tt.t))
		})
	}
}

func TestNowFraction(t *testing.T) {
	assert.InDelta(t, 0.0, NowFraction(clockAt(7, 0)), 1e-9)
	assert.InDelta(t, 0.5, NowFraction(clockAt(19, 0)), 1e-9)
	assert.InDelta(t, 187.0/1440.0, NowFraction(clockAt(10, 7)), 1e-9)
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels()
	require.Len(t, labels, 25)

	assert.Equal(t, "07:00", labels[0])
	assert.Equal(t, "08:00", labels[1])
	assert.Equal(t, "23:00", labels[16])
	assert.Equal(t, "24:00", labels[17], "midnight renders as 24:00")
	assert.Equal(t, "01:00", labels[18])
	assert.Equal(t, "07:00", labels[24])
}

func TestBuildSlots(t *testing.T) {
	rooms := []models.Room{
		{
			ID: "1", Name: "Sál 1", Department: "Kardiochirurgie",
			CurrentStepIndex: 2,
			CurrentPatient:   &models.Patient{Name: "Jan Novák"},
		},
		{
			ID: "2", Name: "Sál 2", Department: "Ortopedie",
			CurrentStepIndex: 3, IsEmergency: true,
			CurrentPatient: &models.Patient{Name: "Eva Malá"},
		},
		{
			ID: "3", Name: "Sál 3", Department: "Neurochirurgie",
			CurrentStepIndex: 6, IsLocked: true,
		},
	}

	slots := BuildSlots(rooms)
	require.Len(t, slots, 3)

	assert.Equal(t, "Chirurgický výkon", slots[0].Label)
	assert.Equal(t, "Jan Novák", slots[0].PatientName)
	assert.Empty(t, slots[0].Badge)
	assert.Equal(t, "#FF3B30", slots[0].ThemeColor)
	assert.Equal(t, "scissors", slots[0].Icon)

	assert.Equal(t, "Nouzový", slots[1].Badge)
	assert.Equal(t, "Nouzový", slots[1].Label)
	assert.Empty(t, slots[1].PatientName, "overrides suppress the patient name")

	assert.Equal(t, "Uzamčeno", slots[2].Badge)
	assert.Equal(t, "Uzamčeno", slots[2].Label)
}

func TestBuildSlotsClampsStepIndex(t *testing.T) {
	slots := BuildSlots([]models.Room{
		{ID: "1", Name: "Sál 1", CurrentStepIndex: -2},
		{ID: "2", Name: "Sál 2", CurrentStepIndex: 42},
	})

	require.Len(t, slots, 2)
	assert.Equal(t, "Příjezd na sál", slots[0].Label)
	assert.Equal(t, "Sál připraven", slots[1].Label)
}
