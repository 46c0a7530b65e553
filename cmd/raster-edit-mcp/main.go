package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pixelsmith/raster-edit-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("raster-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("raster-edit-mcp - MCP server for raster image editing")
			fmt.Println()
			fmt.Println("Usage: raster-edit-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RASTER_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  RASTER_MCP_PREVIEW_MAX=<px>    Longest preview side (default 1024, 0 = off)")
			fmt.Println("  RASTER_MCP_JPEG_QUALITY=<n>    JPEG save quality (default 90)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.DebugMode {
		log.Printf("Raster Edit MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
