// Package mcptool exposes path search as Model Context Protocol tools.
//
// Tools:
//   - find_path: search a grid given as rows of '.' and '#', with start and
//     end written as "row,col"; returns the rendered board and counts.
//   - grid_info: describe the grid notation and search rules.
package mcptool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/editor"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/logging"
)

// Name and Version identify the MCP server.
const (
	Name    = "gridpath"
	Version = "1.0.0"
)

const gridInfo = `Grid notation:
- One string per row, all rows the same length.
- '.' is a passable cell, '#' is a wall.
- Cells are written "row,col", zero-based from the top-left.

Search rules:
- Moves are orthogonal only (east, south, west, north), each costing 1.
- A* with the Manhattan heuristic; the returned path is a shortest one.
- An end cell on a wall, or walled off, is unreachable: the result lists every
  cell reachable from the start and no path.

Output glyphs: S start, E end, * path, + visited, # wall, . open.`

// Tool owns the MCP server and its tool handlers.
type Tool struct {
	mcpServer *server.MCPServer
	log       *slog.Logger
}

// New creates the MCP server and registers the tools.
func New(log *slog.Logger) *Tool {
	if log == nil {
		log = logging.Discard()
	}
	t := &Tool{log: log}
	t.mcpServer = server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`gridpath - shortest paths on 4-connected grids.

AVAILABLE TOOLS:
- find_path: search a grid and get the path drawn on it
- grid_info: the grid notation and search rules`),
	)
	t.registerTools()
	return t
}

// Server returns the underlying MCP server.
func (t *Tool) Server() *server.MCPServer { return t.mcpServer }

// ServeStdio serves the tools over stdin/stdout until the input closes.
func (t *Tool) ServeStdio() error {
	return server.ServeStdio(t.mcpServer)
}

func (t *Tool) registerTools() {
	t.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Find a shortest 4-connected path on a grid of '.' (open) and '#' (wall) rows",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"rows": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Grid rows, e.g. [\"..#\", \"...\"]",
				},
				"start": map[string]interface{}{
					"type":        "string",
					"description": "Start cell as \"row,col\"",
				},
				"end": map[string]interface{}{
					"type":        "string",
					"description": "End cell as \"row,col\"",
				},
				"show_visited": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark cells the search finalized with '+' (default false)",
				},
			},
			Required: []string{"rows", "start", "end"},
		},
	}, t.handleFindPath)

	t.mcpServer.AddTool(mcp.Tool{
		Name:        "grid_info",
		Description: "Describe the grid notation, movement rules and output glyphs",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, t.handleGridInfo)
}

// Tool handlers

func (t *Tool) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	rows, err := stringList(args["rows"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	g, err := grid.FromRows(rows...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start, err := cellArg(g, args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := cellArg(g, args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	showVisited, _ := args["show_visited"].(bool)

	res := astar.Search(g, &start, &end)
	t.log.Info("find_path", "rows", g.Rows(), "cols", g.Cols(),
		"visited", len(res.Visited), "found", res.Found)

	return mcp.NewToolResultText(formatResult(g, start, end, res, showVisited)), nil
}

func (t *Tool) handleGridInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gridInfo), nil
}

// formatResult draws the board and appends the counts.
func formatResult(g *grid.Grid, start, end grid.Cell, res astar.Result, showVisited bool) string {
	b := editor.NewBoardFrom(g)
	// cellArg already bounds-checked both cells, so neither call can fail.
	// The walls they clear belong to the board's own copy of g.
	_ = b.SetStart(start)
	_ = b.SetEnd(end)

	var visited []grid.Cell
	if showVisited {
		visited = res.Visited
	}

	var sb strings.Builder
	sb.WriteString(editor.Render(b, visited, res.Path))
	sb.WriteString("\n\n")
	if res.Found {
		fmt.Fprintf(&sb, "Path found: %d steps, %d cells.\n", res.Cost, len(res.Path))
		fmt.Fprintf(&sb, "Path: %s\n", joinCells(res.Path))
	} else {
		sb.WriteString("No path: the end is not reachable from the start.\n")
	}
	fmt.Fprintf(&sb, "Visited: %d cells.\n", len(res.Visited))
	return sb.String()
}

func joinCells(cells []grid.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// stringList accepts a JSON array of strings or one newline-separated string.
func stringList(v interface{}) ([]string, error) {
	switch x := v.(type) {
	case []interface{}:
		out := make([]string, len(x))
		for i, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("rows[%d] must be a string", i)
			}
			out[i] = s
		}
		return out, nil
	case []string:
		return x, nil
	case string:
		return strings.Split(strings.TrimSpace(x), "\n"), nil
	case nil:
		return nil, fmt.Errorf("rows is required")
	default:
		return nil, fmt.Errorf("rows must be an array of strings")
	}
}

// cellArg parses args[name] as "row,col" and bounds-checks it against g.
func cellArg(g *grid.Grid, args map[string]interface{}, name string) (grid.Cell, error) {
	s, ok := args[name].(string)
	if !ok {
		return grid.Cell{}, fmt.Errorf("%s is required as \"row,col\"", name)
	}
	c, err := grid.ParseCell(s)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%s: %w", name, err)
	}
	if !g.InBounds(c) {
		return grid.Cell{}, fmt.Errorf("%s %v is outside the %dx%d grid", name, c, g.Rows(), g.Cols())
	}
	return c, nil
}
