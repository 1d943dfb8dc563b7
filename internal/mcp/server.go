package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"permit-workflow/backend/internal/repository"
	"permit-workflow/backend/internal/services"
)

// Server exposes the workflow store and analytics over MCP tools so agent
// clients can submit and query recordings without going through REST.
type Server struct {
	mcpServer *server.MCPServer
	store     repository.WorkflowStore
	analytics *services.AnalyticsService
}

// NewServer creates an MCP server bound to the given store and analytics.
func NewServer(store repository.WorkflowStore, analytics *services.AnalyticsService) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"Permit Workflow",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
		store:     store,
		analytics: analytics,
	}

	s.registerTools()
	return s
}

func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"save_workflow",
			mcp.WithDescription("Save a recorded form-filling workflow"),
			mcp.WithObject("workflow", mcp.Required(), mcp.Description("The workflow document to store")),
			mcp.WithString("source", mcp.Description("The submitting client, defaults to chrome_extension")),
		),
		s.handleSaveWorkflow,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"workflow_analytics",
			mcp.WithDescription("Compute aggregate statistics over stored workflows"),
			mcp.WithString("domain", mcp.Description("Restrict the snapshot to one domain")),
		),
		s.handleAnalytics,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"field_suggestions",
			mcp.WithDescription("Classify a form-field selector and return example values"),
			mcp.WithString("field_selector", mcp.Required(), mcp.Description("The CSS selector or field name to classify")),
		),
		s.handleSuggestions,
	)
}

func (s *Server) handleSaveWorkflow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	workflow, ok := args["workflow"].(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Missing required parameter: workflow"), nil
	}

	envelope := map[string]any{"workflow": workflow}
	if source, ok := args["source"].(string); ok && source != "" {
		envelope["source"] = source
	}

	id, err := s.store.Insert(ctx, envelope)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save workflow: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(map[string]any{"workflow_id": id})
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleAnalytics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	domain, _ := args["domain"].(string)

	analytics, err := s.analytics.Compute(ctx, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to compute analytics: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(analytics)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("Invalid arguments type"), nil
	}

	selector, ok := args["field_selector"].(string)
	if !ok || selector == "" {
		return mcp.NewToolResultError("Missing required parameter: field_selector"), nil
	}

	jsonBytes, _ := json.Marshal(services.Suggest(selector))
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MountHTTPHandlers wires the MCP server's HTTP endpoints onto mux.
func MountHTTPHandlers(mux *http.ServeMux, mcpServer *server.MCPServer) {
	// Use SSE server for /mcp/sse and /mcp/message endpoints
	sseServer := server.NewSSEServer(mcpServer, server.WithStaticBasePath("/mcp"))

	mux.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		// Direct POST for tool calls
		if r.Method == http.MethodPost {
			sseServer.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// SSE endpoints
	mux.HandleFunc("/mcp/sse", sseServer.ServeHTTP)
	mux.HandleFunc("/mcp/message", sseServer.ServeHTTP)
}
