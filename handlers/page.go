package handlers

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"study-planner/models"
	"study-planner/store"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>Study Planner</title></head>
<body>
<h1>Study Planner</h1>

<h2>Add New Task</h2>
<form method="POST" action="/tasks">
  <label>Subject <input type="text" name="subject" required></label><br>
  <label>Task <input type="text" name="description" required></label><br>
  <label>Due Date <input type="date" name="due_date" required></label><br>
  <label>Status
    <select name="status">
      <option>Pending</option>
      <option>Completed</option>
      <option>Overdue</option>
    </select>
  </label><br>
  <button type="submit">Add Task</button>
</form>

<h2>Your Tasks</h2>
{{if .Tasks}}
<table border="1" cellpadding="4">
  <tr><th>#</th><th>Subject</th><th>Task</th><th>Due Date</th><th>Status</th></tr>
  {{range .Tasks}}
  <tr>
    <td>{{.Number}}</td>
    <td>{{.Subject}}</td>
    <td>{{.Description}}</td>
    <td>{{.DueDate}}</td>
    <td>{{.Status}}</td>
  </tr>
  {{end}}
</table>
{{else}}
<p>No tasks yet!</p>
{{end}}
</body>
</html>
`))

type taskRow struct {
	Number int
	models.Task
}

// HomePage renders the add-task form and the full task table, read fresh
// from the store on every request.
func HomePage(w http.ResponseWriter, r *http.Request) {
	tasks, err := store.Tasks.All()
	if err != nil {
		log.Printf("HomePage error: %v", err)
		http.Error(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	today := time.Now()
	rows := make([]taskRow, 0, len(tasks))
	for i, task := range tasks {
		task.Status = task.DisplayStatus(today)
		rows = append(rows, taskRow{Number: i + 1, Task: task})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, struct{ Tasks []taskRow }{rows}); err != nil {
		log.Printf("HomePage render error: %v", err)
	}
}
