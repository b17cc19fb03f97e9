package main

import (
	"context"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker analyze|kanban|workflow <args>")
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "analyze":
		err = RunAnalyze(ctx, os.Args[2:], os.Stdout, os.Stderr)
	case "kanban":
		err = RunKanban(ctx, os.Args[2:], os.Stdout, os.Stderr)
	case "workflow":
		err = RunWorkflow(ctx, os.Args[2:], os.Stdout, os.Stderr)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}
}
