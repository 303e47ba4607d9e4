package handlers

import (
	"path/filepath"
	"testing"

	"study-planner/store"

	"github.com/gorilla/mux"
)

func setupStore(t *testing.T) {
	t.Helper()
	store.Tasks = store.New(filepath.Join(t.TempDir(), "tasks.csv"))
}

func taskRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", HomePage).Methods("GET")
	r.HandleFunc("/tasks", GetTasks).Methods("GET")
	r.HandleFunc("/tasks", CreateTask).Methods("POST")
	r.HandleFunc("/tasks/export", ExportTasks).Methods("GET")
	r.HandleFunc("/tasks/{id}/complete", CompleteTask).Methods("POST")
	r.HandleFunc("/tasks/{id}", DeleteTask).Methods("DELETE")
	r.HandleFunc("/stats", GetStats).Methods("GET")
	return r
}
