package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"study-planner/models"
	"study-planner/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage_EmptyStore(t *testing.T) {
	setupStore(t)

	rec := httptest.NewRecorder()
	taskRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Add New Task")
	assert.Contains(t, rec.Body.String(), "No tasks yet!")
}

func TestHomePage_RendersTaskTable(t *testing.T) {
	setupStore(t)
	require.NoError(t, store.Tasks.Append(models.Task{Subject: "Math", Description: "Revise integrals", DueDate: "2099-01-01", Status: models.StatusPending}))
	require.NoError(t, store.Tasks.Append(models.Task{Subject: "History", Description: "Essay", DueDate: "2000-01-01", Status: models.StatusPending}))

	rec := httptest.NewRecorder()
	taskRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Revise integrals")
	assert.Contains(t, body, "Overdue")
	assert.NotContains(t, body, "No tasks yet!")
}

func TestHomePage_EscapesTaskFields(t *testing.T) {
	setupStore(t)
	require.NoError(t, store.Tasks.Append(models.Task{Subject: "<script>alert(1)</script>", Description: "x", DueDate: "2099-01-01", Status: models.StatusPending}))

	rec := httptest.NewRecorder()
	taskRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}
