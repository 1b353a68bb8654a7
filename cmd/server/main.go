// Command server runs the todo HTTP API until it receives SIGINT or SIGTERM.
//
// Run with -env to list the environment variables it reads.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/todo-backend/internal/app"
	"github.com/heartmarshall/todo-backend/internal/config"
)

func main() {
	listEnv := flag.Bool("env", false, "print supported environment variables and exit")
	flag.Parse()

	if *listEnv {
		if err := config.WriteEnvUsage(os.Stdout); err != nil {
			log.Fatalf("server: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
