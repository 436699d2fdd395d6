// Package main launches ctxboard, a terminal view for editing the
// context list attached to an assistant session: list, mark, delete,
// reorder, and visit the buffers and files that will be sent as model
// context. File paths passed as arguments seed the default target.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/ctxboard/internal/command"
	"github.com/Cyclone1070/ctxboard/internal/config"
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/host"
	"github.com/Cyclone1070/ctxboard/internal/pathutil"
	"github.com/Cyclone1070/ctxboard/internal/store"
	"github.com/Cyclone1070/ctxboard/internal/ui"
	uiservice "github.com/Cyclone1070/ctxboard/internal/ui/service"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config    *config.Config
	Workspace *command.Workspace
	Registry  *command.Registry
	Renderer  uiservice.MarkdownRenderer
}

// buildDependencies wires the application from config and the file
// paths given on the command line.
func buildDependencies(args []string) *Dependencies {
	// Load configuration (from defaults + ~/.config/ctxboard/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	h := host.NewHost(host.NewOSFileSystem(), cfg.Preview.MaxFileSize)
	ws := command.NewWorkspace(store.NewRegistry(), h, cfg)

	// Seed the default target with the files passed as arguments.
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", arg, err)
			continue
		}
		if !h.FileLive(abs) {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: not a readable file\n", arg)
			continue
		}
		item := &contextitem.FileItem{
			Path:        abs,
			MIME:        pathutil.MIMELabel(abs),
			DisplayName: pathutil.Abbreviate(abs),
		}
		if err := ws.Store().Add(item); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not add %s: %v\n", arg, err)
		}
	}

	return &Dependencies{
		Config:    cfg,
		Workspace: ws,
		Registry:  command.DefaultRegistry(),
		Renderer:  uiservice.NewGlamourRenderer(cfg.Preview.WordWrap),
	}
}

func main() {
	deps := buildDependencies(os.Args[1:])

	m := ui.New(deps.Workspace, deps.Registry, deps.Renderer)
	if err := ui.Run(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
