package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"study-planner/middlewares"
	"study-planner/models"
	"study-planner/store"
	"study-planner/utils"
)

// ExportTasks godoc
// @Summary      Download the task list as CSV
// @Tags         tasks
// @Produce      text/csv
// @Success      200  {string}  string  "CSV file"
// @Router       /tasks/export [get]
func ExportTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := store.Tasks.All()
	if err != nil {
		log.Printf("ExportTasks error: %v", err)
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="study_tasks.csv"`)

	today := time.Now()
	cw := csv.NewWriter(w)
	cw.Write(store.Header)
	for _, task := range tasks {
		cw.Write([]string{task.Subject, task.Description, task.DueDate, task.DisplayStatus(today)})
	}
	cw.Flush()
}

// EmailTasks godoc
// @Summary      Email the task list to the logged-in account
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {string}  string  "Missing token"
// @Router       /tasks/email [post]
// @Security     BearerAuth
func EmailTasks(w http.ResponseWriter, r *http.Request) {
	to := middlewares.GetUserEmail(r)
	if to == "" {
		http.Error(w, "No email on account", http.StatusBadRequest)
		return
	}

	tasks, err := store.Tasks.All()
	if err != nil {
		log.Printf("EmailTasks error: %v", err)
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	if err := utils.SendEmail(to, "Your Study Tasks", taskDigest(tasks)); err != nil {
		log.Printf("EmailTasks send error: %v", err)
		http.Error(w, "Failed to send email", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Tasks sent to " + to})
}

func taskDigest(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "No tasks yet!"
	}

	today := time.Now()
	var b strings.Builder
	for i, task := range tasks {
		fmt.Fprintf(&b, "%d. %s - %s | Due: %s | Status: %s\n",
			i+1, task.Subject, task.Description, task.DueDate, task.DisplayStatus(today))
	}
	return b.String()
}
