// @title           Study Planner
// @version         1.0
// @description     A study-task tracker backed by a flat CSV file
// @host            localhost:8080
// @BasePath        /

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"study-planner/db"
	"study-planner/handlers"
	"study-planner/middlewares"
	"study-planner/store"
)

func main() {
	db.Connect()
	defer db.Users.Close()
	store.Open()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomePage).Methods("GET")

	r.HandleFunc("/signup", handlers.Signup).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.HandleFunc("/refresh", handlers.RefreshToken).Methods("POST")

	r.HandleFunc("/tasks", handlers.GetTasks).Methods("GET")
	r.HandleFunc("/tasks", handlers.CreateTask).Methods("POST")
	r.HandleFunc("/tasks/export", handlers.ExportTasks).Methods("GET")
	r.HandleFunc("/tasks/email", middlewares.RequireAuth(handlers.EmailTasks)).Methods("POST")
	r.HandleFunc("/tasks/{id}/complete", middlewares.RequireAuth(handlers.CompleteTask)).Methods("POST")
	r.HandleFunc("/tasks/{id}", middlewares.RequireAuth(handlers.DeleteTask)).Methods("DELETE")

	r.HandleFunc("/stats", handlers.GetStats).Methods("GET")

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addr := os.Getenv("SP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	h := ghandlers.CORS(
		ghandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "DELETE"}),
	)(r)
	h = ghandlers.LoggingHandler(os.Stdout, h)

	fmt.Println("Server starting at http://localhost" + addr)
	log.Fatal(http.ListenAndServe(addr, h))
}
