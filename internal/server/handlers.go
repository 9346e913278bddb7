package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vibetools/gmforge/internal/config"
	"github.com/vibetools/gmforge/internal/errs"
	"github.com/vibetools/gmforge/internal/export"
	"github.com/vibetools/gmforge/internal/project"
	"github.com/vibetools/gmforge/internal/writeback"
)

// handlers executes tool calls. Failures are reported inside the result
// envelope with an "Error: " prefix, never as transport errors, so a broken
// project never tears down the session.
type handlers struct {
	cfg Config
	log *log.Logger
}

func newHandlers(cfg Config) *handlers {
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard)
	}
	return &handlers{cfg: cfg, log: cfg.Log}
}

// projectRoot resolves the project directory for one call.
func (h *handlers) projectRoot(req mcp.CallToolRequest) (string, error) {
	root, err := config.Resolve(req.GetString("project_path", ""), h.cfg.ProjectPath, h.cfg.EnvFile)
	if err != nil {
		return "", err
	}
	h.log.Debug("tool call", "tool", req.Params.Name, "project", root)
	return root, nil
}

func fail(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// stringMapArg reads an object argument as a string map. Absent or
// mistyped arguments come back nil.
func stringMapArg(req mcp.CallToolRequest, key string) map[string]string {
	raw, ok := req.GetArguments()[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

func (h *handlers) scanProject(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	idx, err := project.Scan(root)
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(ScanReport(idx)), nil
}

func (h *handlers) gmlContent(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	file := req.GetString("file_path", "")
	if file == "" {
		return fail(errs.New(errs.Validation, "file_path is required")), nil
	}
	gml, err := project.ReadGmlFile(root, file)
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(GmlContentReport(gml)), nil
}

func (h *handlers) roomInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	name := req.GetString("room_name", "")
	if name == "" {
		return fail(errs.New(errs.Validation, "room_name is required")), nil
	}
	detail, err := project.RoomInfo(root, name)
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(RoomInfoReport(detail)), nil
}

func (h *handlers) objectInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	name := req.GetString("object_name", "")
	if name == "" {
		return fail(errs.New(errs.Validation, "object_name is required")), nil
	}
	detail, err := project.ObjectInfo(root, name)
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(ObjectInfoReport(detail)), nil
}

func (h *handlers) spriteInfo(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	name := req.GetString("sprite_name", "")
	if name == "" {
		return fail(errs.New(errs.Validation, "sprite_name is required")), nil
	}
	detail, err := project.SpriteInfo(root, name)
	if err != nil {
		return fail(err), nil
	}
	if detail.Err != "" {
		return fail(errs.New(errs.IO, detail.Err)), nil
	}
	return mcp.NewToolResultText(SpriteInfoReport(detail)), nil
}

func (h *handlers) exportData(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}

	// The export is defined even for a directory that fails to scan: the
	// header goes out with zero files rather than failing the call.
	idx, err := project.Scan(root)
	if err != nil {
		idx = &project.Index{RootPath: root}
	}
	data := export.All(idx)

	if !req.GetBool("save_to_file", false) {
		return mcp.NewToolResultText(data), nil
	}

	out := req.GetString("output_file", "")
	if out == "" {
		out = filepath.Base(root) + "_export.txt"
	}
	if err := os.WriteFile(out, []byte(data), 0o644); err != nil {
		return fail(errs.Wrap(errs.IO, err, "Error saving file")), nil
	}
	return mcp.NewToolResultText(ExportSavedReport(out, data)), nil
}

func (h *handlers) listAssets(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	idx, err := project.Scan(root)
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(AssetListReport(idx, req.GetString("category", ""))), nil
}

func (h *handlers) duplicateObject(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	source := req.GetString("source_object", "")
	newName := req.GetString("new_object_name", "")
	if source == "" {
		return fail(errs.New(errs.Validation, "source_object is required")), nil
	}
	if newName == "" {
		return fail(errs.New(errs.Validation, "new_object_name is required")), nil
	}
	res, err := writeback.DuplicateObject(root, source, newName, stringMapArg(req, "property_overrides"))
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(DuplicateReport(res)), nil
}

func (h *handlers) addInstance(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	room := req.GetString("room_name", "")
	object := req.GetString("object_name", "")
	if room == "" {
		return fail(errs.New(errs.Validation, "room_name is required")), nil
	}
	if object == "" {
		return fail(errs.New(errs.Validation, "object_name is required")), nil
	}
	args := req.GetArguments()
	if args["x"] == nil || args["y"] == nil {
		return fail(errs.New(errs.Validation, "x and y are required")), nil
	}

	res, err := writeback.AddRoomInstance(root, writeback.InstanceSpec{
		Room:      room,
		Object:    object,
		X:         req.GetFloat("x", 0),
		Y:         req.GetFloat("y", 0),
		ScaleX:    req.GetFloat("scale_x", 1.0),
		ScaleY:    req.GetFloat("scale_y", 1.0),
		Rotation:  req.GetFloat("rotation", 0.0),
		Layer:     req.GetString("layer_name", "Instances"),
		Overrides: stringMapArg(req, "property_overrides"),
	})
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(InstanceReport(res)), nil
}

func (h *handlers) writeGml(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := h.projectRoot(req)
	if err != nil {
		return fail(err), nil
	}
	file := req.GetString("file_path", "")
	if file == "" {
		return fail(errs.New(errs.Validation, "file_path is required")), nil
	}
	if raw, ok := req.GetArguments()["content"]; !ok || raw == nil {
		return fail(errs.New(errs.Validation, "content is required")), nil
	}

	res, err := writeback.WriteGmlFile(root, file, req.GetString("content", ""))
	if err != nil {
		return fail(err), nil
	}
	return mcp.NewToolResultText(WriteReport(res)), nil
}
