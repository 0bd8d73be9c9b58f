// Package main runs the liftplan MCP server over stdio for local editor use.
// The same MCP server is also mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/liftplan/internal/catalog"
	"github.com/2beens/liftplan/internal/config"
	"github.com/2beens/liftplan/internal/db"
	liftplanmcp "github.com/2beens/liftplan/internal/mcp"
	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/resolver"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("LIFTPLAN_POSTGRES_PASS"),
		MaxConns:       2,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// previews only, no resolution cache needed for a single client
	cat := catalog.Default()
	assembler := planner.NewAssembler(cat, resolver.New(cat, nil))
	server := liftplanmcp.NewServer(dbPool, assembler)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
