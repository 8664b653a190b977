package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Set properties of the predefined Logger, including
	// the log entry prefix and a flag to disable printing
	// the time, source file, and line number.
	log.SetPrefix("lg/fitness-planner-go-api: ")
	log.SetFlags(0)

	// .env is optional — env vars may come from the environment directly.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env")
	}

	fmt.Println("Starting gin app...")

	h := newHandler()

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "localhost:3000"
	}
	router.Run(addr)
}
