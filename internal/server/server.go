// Package server wires the project tools into an MCP server speaking stdio.
//
// This is the composition root: it builds the shared handler state and
// registers one tool per project operation. No project logic lives here.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// Name identifies the server to MCP clients.
const Name = "gms2-mcp-server"

// Config carries everything the tool handlers share. ProjectPath is the
// path given on the command line and may be empty; EnvFile is the dotenv
// file consulted as a last resort when neither the call nor the flag names
// a project.
type Config struct {
	ProjectPath string
	EnvFile     string
	Version     string
	Log         *log.Logger
}

// New builds the MCP server with every project tool registered.
func New(cfg Config) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	h := newHandlers(cfg)

	s.AddTool(scanProjectTool(), h.scanProject)
	s.AddTool(gmlContentTool(), h.gmlContent)
	s.AddTool(roomInfoTool(), h.roomInfo)
	s.AddTool(objectInfoTool(), h.objectInfo)
	s.AddTool(spriteInfoTool(), h.spriteInfo)
	s.AddTool(exportDataTool(), h.exportData)
	s.AddTool(listAssetsTool(), h.listAssets)
	s.AddTool(duplicateObjectTool(), h.duplicateObject)
	s.AddTool(addInstanceTool(), h.addInstance)
	s.AddTool(writeGmlTool(), h.writeGml)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(cfg Config) error {
	return server.ServeStdio(New(cfg))
}
