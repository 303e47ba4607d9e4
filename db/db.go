package db

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

var Users *sql.DB

const usersSchema = `CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL
)`

func Connect() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using default env")
	}

	path := os.Getenv("SP_USERS_DB")
	if path == "" {
		path = "users.db"
	}

	Users, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatalf("Unable to open user database: %v", err)
	}

	if _, err := Users.Exec(usersSchema); err != nil {
		log.Fatalf("Unable to create users table: %v", err)
	}

	log.Printf("User database: %s", path)
}
