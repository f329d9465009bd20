package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
)

func TestGetSalon_NotConfigured(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, http.StatusNotFound, env.request(t, http.MethodGet, "/api/salon", "").Code)
}

func TestSaveSalon_NormalizesSlugAndDefaultsHours(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/api/salon", `{"salonName":"Studio Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cfg models.SalonConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, "studio-ana", cfg.Slug)
	require.Len(t, cfg.WorkingHours, 7)
	assert.Equal(t, "Sunday", cfg.WorkingHours[0].Day)
	assert.False(t, cfg.WorkingHours[0].IsOpen)
	assert.Empty(t, cfg.Services)
}

func TestSaveSalon_KeepsServicesAndID(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.request(t, http.MethodPost, "/api/salon/services",
		`{"id":"s1","name":"Haircut","price":50}`).Code)

	var first models.SalonConfig
	w := env.request(t, http.MethodGet, "/api/salon", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = env.request(t, http.MethodPut, "/api/salon", `{"salonName":"Studio Ana","slug":"Studio Ana"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.SalonConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, first.ID, saved.ID)
	assert.Equal(t, "studio-ana", saved.Slug)
	require.Len(t, saved.Services, 1)
	assert.Equal(t, "Haircut", saved.Services[0].Name)
}

func TestServices_CreateBootstrapsConfig(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/salon/services", `{"name":"Haircut","price":50}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var svc models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))
	assert.NotEmpty(t, svc.ID)

	cfg, ok := env.store.SalonConfig()
	require.True(t, ok)
	assert.Empty(t, cfg.WorkingHours)
	require.Len(t, cfg.Services, 1)
}

func TestServices_EmptyListWithoutConfig(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/salon/services", "")
	require.Equal(t, http.StatusOK, w.Code)
	var services []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Empty(t, services)
}

func TestServices_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.request(t, http.MethodPost, "/api/salon/services",
		`{"id":"s1","name":"Haircut","price":50}`).Code)

	require.Equal(t, http.StatusOK, env.request(t, http.MethodPut, "/api/salon/services/s1",
		`{"price":60}`).Code)
	cfg, _ := env.store.SalonConfig()
	assert.Equal(t, 60.0, cfg.Services[0].Price)
	assert.Equal(t, "Haircut", cfg.Services[0].Name)

	assert.Equal(t, http.StatusNotFound, env.request(t, http.MethodPut, "/api/salon/services/missing",
		`{"price":60}`).Code)

	require.Equal(t, http.StatusOK, env.request(t, http.MethodDelete, "/api/salon/services/s1", "").Code)
	cfg, _ = env.store.SalonConfig()
	assert.Empty(t, cfg.Services)
}

func TestUpdateWorkingHours(t *testing.T) {
	env := newTestEnv(t)

	// no config yet
	assert.Equal(t, http.StatusNotFound, env.request(t, http.MethodPut, "/api/salon/hours",
		`{"workingHours":[{"day":"Monday","isOpen":true,"openTime":"08:00","closeTime":"17:00"}]}`).Code)

	require.Equal(t, http.StatusCreated, env.request(t, http.MethodPost, "/api/salon/services",
		`{"id":"s1","name":"Haircut","price":50}`).Code)
	require.Equal(t, http.StatusOK, env.request(t, http.MethodPut, "/api/salon/hours",
		`{"workingHours":[{"day":"Monday","isOpen":true,"openTime":"08:00","closeTime":"17:00"}]}`).Code)

	cfg, _ := env.store.SalonConfig()
	require.Len(t, cfg.WorkingHours, 1)
	assert.Equal(t, "08:00", cfg.WorkingHours[0].OpenTime)
}

func TestProfile_GetAndUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "Ana", user.Name)

	w = env.request(t, http.MethodPut, "/api/profile",
		`{"name":"Ana Souza","email":"ana@example.com","salonName":"Studio Ana","address":"Rua das Flores 10"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "Studio Ana", user.SalonName)
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusCreated, env.request(t, http.MethodPost, "/api/appointments",
		`{"id":"a1","clientName":"Maria","service":"Haircut","date":"2024-01-15","time":"09:00","price":50}`).Code)

	w := env.request(t, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Summary struct {
			TotalAppointments int `json:"totalAppointments"`
		} `json:"summary"`
		Monthly []json.RawMessage `json:"monthly"`
		Details []json.RawMessage `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.Summary.TotalAppointments)
	assert.Len(t, payload.Monthly, 6)
	assert.Len(t, payload.Details, 6)
}
