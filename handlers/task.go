package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"study-planner/models"
	"study-planner/store"

	"github.com/gorilla/mux"
)

// GetTasks godoc
// @Summary      List all tasks
// @Description  Returns every task in file order
// @Tags         tasks
// @Produce      json
// @Param        status  query  string  false  "Filter by status (Pending, Completed, Overdue)"
// @Success      200  {array}  models.Task
// @Failure      500  {string}  string  "Internal error"
// @Router       /tasks [get]
func GetTasks(w http.ResponseWriter, r *http.Request) {
	all, err := store.Tasks.All()
	if err != nil {
		log.Printf("GetTasks error: %v", err)
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("status")
	if filter != "" && !models.ValidStatus(filter) {
		http.Error(w, "Invalid status filter", http.StatusBadRequest)
		return
	}

	today := time.Now()
	tasks := []models.Task{}
	for _, task := range all {
		task.Status = task.DisplayStatus(today)
		if filter != "" && task.Status != filter {
			continue
		}
		tasks = append(tasks, task)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// CreateTask godoc
// @Summary      Add a task
// @Description  Appends one task to the storage file
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body  models.Task  true  "Task to add"
// @Success      201  {object}  models.Task
// @Failure      400  {string}  string  "Bad request"
// @Failure      500  {string}  string  "Internal error"
// @Router       /tasks [post]
func CreateTask(w http.ResponseWriter, r *http.Request) {
	task, fromForm, err := decodeTask(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.Tasks.Append(task); err != nil {
		log.Printf("CreateTask error: %v", err)
		http.Error(w, "Failed to save task", http.StatusInternalServerError)
		return
	}

	// The HTML form lands back on the page; API callers get the task.
	if fromForm {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(task)
}

// CompleteTask godoc
// @Summary      Mark a task completed
// @Tags         tasks
// @Param        id  path  int  true  "1-based task position"
// @Success      204  {string}  string  "No content"
// @Failure      404  {string}  string  "Task not found"
// @Router       /tasks/{id}/complete [post]
// @Security     BearerAuth
func CompleteTask(w http.ResponseWriter, r *http.Request) {
	n, err := taskNumber(r)
	if err != nil {
		http.Error(w, "Invalid task number", http.StatusBadRequest)
		return
	}

	if err := store.Tasks.SetStatus(n, models.StatusCompleted); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Printf("CompleteTask error: %v", err)
		http.Error(w, "Failed to update task", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Param        id  path  int  true  "1-based task position"
// @Success      204  {string}  string  "No content"
// @Failure      404  {string}  string  "Task not found"
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func DeleteTask(w http.ResponseWriter, r *http.Request) {
	n, err := taskNumber(r)
	if err != nil {
		http.Error(w, "Invalid task number", http.StatusBadRequest)
		return
	}

	if err := store.Tasks.Delete(n); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Task not found", http.StatusNotFound)
			return
		}
		log.Printf("DeleteTask error: %v", err)
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func taskNumber(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// decodeTask reads a task from a JSON body or an HTML form post and
// validates it. Subject, description and due date are required; a blank
// status defaults to Pending.
func decodeTask(r *http.Request) (models.Task, bool, error) {
	var task models.Task
	fromForm := false

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
			return task, false, errors.New("Invalid JSON body")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return task, false, errors.New("Invalid form body")
		}
		fromForm = true
		task = models.Task{
			Subject:     r.PostFormValue("subject"),
			Description: r.PostFormValue("description"),
			DueDate:     r.PostFormValue("due_date"),
			Status:      r.PostFormValue("status"),
		}
	}

	task.Subject = strings.TrimSpace(task.Subject)
	task.Description = strings.TrimSpace(task.Description)
	task.DueDate = strings.TrimSpace(task.DueDate)
	task.Status = strings.TrimSpace(task.Status)

	if task.Subject == "" || task.Description == "" || task.DueDate == "" {
		return task, fromForm, errors.New("Subject, description and due date are required")
	}
	if _, err := time.Parse(models.DueDateLayout, task.DueDate); err != nil {
		return task, fromForm, errors.New("Due date must be YYYY-MM-DD")
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	} else if !models.ValidStatus(task.Status) {
		return task, fromForm, errors.New("Invalid status")
	}

	return task, fromForm, nil
}
