package endpoints

import (
	"testing"

	"github.com/ortelius/command-center/internal/services"
	"github.com/ortelius/command-center/metrics"
	"github.com/ortelius/command-center/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoints(t *testing.T) {
	svc, err := services.LoadDashboardService("", nil)
	require.NoError(t, err)

	all, err := ResolveEndpoints(svc, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	warning, err := ResolveEndpoints(svc, "warning", false)
	require.NoError(t, err)
	require.Len(t, warning, 2)
	for _, e := range warning {
		assert.Equal(t, model.HealthWarning, e.Health)
	}

	unencrypted, err := ResolveEndpoints(svc, "", true)
	require.NoError(t, err)
	require.Len(t, unencrypted, 1)
	assert.Equal(t, "FW-28", unencrypted[0].ID)
}

func TestResolveEndpoints_InvalidHealth(t *testing.T) {
	svc, err := services.LoadDashboardService("", nil)
	require.NoError(t, err)

	_, err = ResolveEndpoints(svc, "Broken", false)
	assert.ErrorIs(t, err, metrics.ErrInvalidSelector)
	assert.NotErrorIs(t, err, metrics.ErrUnknownHealth)
}
