// Package main runs the gymsplit MCP server over stdio (for local agent use).
// The same tools are mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/2beens/gymsplit/internal/config"
	"github.com/2beens/gymsplit/internal/logstore"
	gsmcp "github.com/2beens/gymsplit/internal/mcp"
	"github.com/2beens/gymsplit/internal/settings"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/tracker"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	sheetID := flag.String("sheet", os.Getenv("GYMSPLIT_SHEET_ID"), "spreadsheet id (or GYMSPLIT_SHEET_ID)")
	startDay := flag.Int("start-day", -1, "cycle start day 0-6 (0=Sunday), defaults to config")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token := os.Getenv("GYMSPLIT_TOKEN")
	if token == "" {
		log.Println("GYMSPLIT_TOKEN not set, history tools will fail with auth errors")
	}

	cycleStart := cfg.DefaultCycleStartDay
	if *startDay >= 0 {
		cycleStart = *startDay
	} else if v := os.Getenv("GYMSPLIT_CYCLE_START_DAY"); v != "" {
		if cycleStart, err = strconv.Atoi(v); err != nil {
			log.Fatalf("parse GYMSPLIT_CYCLE_START_DAY: %v", err)
		}
	}

	static := settings.Static{SpreadsheetID: *sheetID, CycleStartDay: cycleStart}
	if err := settings.Settings(static).CycleConfig().Validate(); err != nil {
		log.Fatalf("cycle start day: %v", err)
	}

	backend := logstore.NewSheetsBackend(cfg.SheetsEndpoint, nil)
	adapter := logstore.NewAdapter(backend, metrics.NewManager("gymsplit", "mcp", prometheus.NewRegistry()))
	service := tracker.NewService(adapter, static)

	server := gsmcp.NewServer(service, logstore.Credential(token))
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
