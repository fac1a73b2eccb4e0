package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

func TestPlacementCmd_Use(t *testing.T) {
	assert.Equal(t, "placement <body> [date]", placementCmd.Use)
	assert.Contains(t, placementCmd.Long, "Pluto")
}

func TestPlacementCmd_RequiresBody(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "placement")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s)")
}

func TestPlacementCmd_Executes(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "placement", "MERCURY", "2000-01-01")

	require.NoError(t, err)
	assert.Equal(t, domain.Mercury, ts.Placement.LastBody)
	assert.Equal(t, domain.NewDate(2000, 1, 1).DayCount(), ts.Placement.LastDayCount)
	assert.Contains(t, out, "2000-01-01")
	assert.Contains(t, out, "8° 12'")
	assert.Contains(t, out, "Scorpio")
	assert.Contains(t, out, "(R)")
}

func TestPlacementCmd_DefaultsToNow(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "placement", "moon")

	require.NoError(t, err)
	assert.Equal(t, domain.Moon, ts.Placement.LastBody)
	assert.Equal(t, domain.DayCountFromTime(fixedNow), ts.Placement.LastDayCount)
}

func TestPlacementCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "placement", "--json", "venus", "2000-01-01")
	require.NoError(t, err)

	var p domain.Placement
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, domain.Venus, p.Body)
	assert.Equal(t, domain.Scorpio, p.Sign)
	assert.True(t, p.Retrograde)
	assert.InDelta(t, 218.2, p.Longitude, 1e-9)
}

func TestPlacementCmd_UnknownBody(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "placement", "vulcan")

	assert.ErrorIs(t, err, domain.ErrUnknownBody)
}

func TestPlacementCmd_ServiceError(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.Placement.Err = errors.New("no convergence")

	_, _, err := execute(t, "placement", "mars")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "placement failed")
}

func TestPlacementCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	placementService = nil

	_, _, err := execute(t, "placement", "sun")

	assert.EqualError(t, err, "placement service not configured")
}
