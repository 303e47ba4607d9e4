package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"study-planner/store"
)

// GetStats godoc
// @Summary      Task status overview
// @Description  Counts tasks per status, overdue derived from due dates
// @Tags         stats
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /stats [get]
func GetStats(w http.ResponseWriter, r *http.Request) {
	tasks, err := store.Tasks.All()
	if err != nil {
		log.Printf("GetStats error: %v", err)
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	today := time.Now()
	stats := map[string]int{"total": len(tasks)}
	for _, task := range tasks {
		stats[task.DisplayStatus(today)]++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
