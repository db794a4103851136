package metric

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConditionalPlaceholder(t *testing.T) {
	day, err := time.Parse(time.DateOnly, "2026-03-15")
	require.NoError(t, err)

	raw, err := json.Marshal(conditionalPlaceholder(100, day))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	// Запись не сохранена, поэтому идентификатора нет
	require.Nil(t, body["id"])
	require.Equal(t, float64(100), body["footballer_id"])

	// Все показатели заполнены нулями, а не null
	for _, name := range []string{
		"vo2_max", "lactate_levels", "training_intensity", "recovery_times",
		"current_vo2_max", "current_lactate_levels", "current_muscle_strength",
		"target_vo2_max", "target_lactate_level", "target_muscle_strength",
	} {
		require.Equal(t, 0.0, body[name], name)
	}

	// Запрошенный день отражается в обеих датах
	require.Equal(t, "2026-03-15T00:00:00Z", body["created_at"])
	require.Equal(t, "2026-03-15T00:00:00Z", body["updated_at"])
}
