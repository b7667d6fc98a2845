// Command dbtool creates the application database if it does not exist.
// Run it once before the first start of the app; AutoMigrate handles the
// tables afterwards.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
)

func main() {
	host := goDotEnvVariable("DB_HOST")
	port := goDotEnvVariable("DB_PORT")
	user := goDotEnvVariable("DB_USER")
	password := goDotEnvVariable("DB_PASSWORD")
	name := goDotEnvVariable("DB_NAME")
	sslMode := goDotEnvVariable("DB_SSLMODE")

	// Connect to the maintenance database; the target may not exist yet.
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open connection: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database: %v", err)
	}

	if exists {
		fmt.Printf("Database %s already exists\n", name)
		return
	}

	// CREATE DATABASE cannot be parameterized.
	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(name)))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	fmt.Printf("Database %s created\n", name)
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
