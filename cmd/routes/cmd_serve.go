package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/methan6427/Dijkstra-2026/routefile"
	"github.com/methan6427/Dijkstra-2026/server"
)

// serveConfig mirrors the optional yaml config file; flags override it.
type serveConfig struct {
	Addr  string `yaml:"addr"`
	Graph string `yaml:"graph"`
}

var (
	serveAddr       string
	serveGraphPath  string
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve shortest-path queries over HTTP",
	Long: `serve loads the edge records of a route file (the header's
start/end/metric are ignored; each request carries its own) and answers
POST /api/route queries until terminated.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveGraphPath, "graph", "", "route file to load the graph from")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "yaml config file (addr, graph)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := serveConfig{Addr: serveAddr, Graph: serveGraphPath}
	if serveConfigPath != "" {
		fileCfg, err := loadServeConfig(serveConfigPath)
		if err != nil {
			return err
		}
		// Explicit flags win over the config file.
		if !cmd.Flags().Changed("addr") && fileCfg.Addr != "" {
			cfg.Addr = fileCfg.Addr
		}
		if !cmd.Flags().Changed("graph") && fileCfg.Graph != "" {
			cfg.Graph = fileCfg.Graph
		}
	}
	if cfg.Graph == "" {
		return fmt.Errorf("no graph file: pass --graph or set graph in --config")
	}

	q, err := routefile.LoadFile(cfg.Graph, routefile.WithProgress(func(edges int) {
		slog.Debug("loading graph", "edges", edges)
	}))
	if err != nil {
		return err
	}
	slog.Info("graph loaded",
		"file", cfg.Graph, "nodes", q.Graph.NodeCount(), "edges", q.Graph.EdgeCount())

	router := mux.NewRouter()
	server.NewHandler(q.Graph, slog.Default()).RegisterRoutes(router)

	slog.Info("listening", "addr", cfg.Addr)

	return http.ListenAndServe(cfg.Addr, router)
}

func loadServeConfig(path string) (serveConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return serveConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg serveConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return serveConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
