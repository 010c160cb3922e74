package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingDefaults(t *testing.T) {
	setupTestDB(t)

	service := SettingService{}
	allSetting, err := service.GetAllSetting()
	require.NoError(t, err)

	assert.Equal(t, 8780, allSetting.WebPort)
	assert.Equal(t, "/", allSetting.WebBasePath)
	assert.Equal(t, "UTC", allSetting.TimeLocation)
}

func TestSettingPersistence(t *testing.T) {
	setupTestDB(t)

	service := SettingService{}
	require.NoError(t, service.SetPort(9090))
	require.NoError(t, service.SetTimeLocation("Europe/Berlin"))
	assert.Error(t, service.SetTimeLocation("Nowhere/Special"))

	port, err := service.GetPort()
	require.NoError(t, err)
	assert.Equal(t, 9090, port)

	location, err := service.GetTimeLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", location.String())
}

func TestSecretIsGeneratedOnceAndPersisted(t *testing.T) {
	setupTestDB(t)

	service := SettingService{}
	first, err := service.GetSecret()
	require.NoError(t, err)
	assert.Len(t, first, 32)

	second, err := service.GetSecret()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSecretFromEnvironmentWins(t *testing.T) {
	setupTestDB(t)
	t.Setenv("TD_SECRET", "from-the-environment")

	secret, err := (&SettingService{}).GetSecret()
	require.NoError(t, err)
	assert.Equal(t, []byte("from-the-environment"), secret)
}
