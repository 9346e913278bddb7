package server

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vibetools/gmforge/internal/project"
)

// projectPathDesc documents the argument every tool shares.
const projectPathDesc = "Path to GMS2 project folder (optional, uses config default)"

func scanProjectTool() mcp.Tool {
	return mcp.NewTool("scan_gms2_project",
		mcp.WithDescription("Scans a GameMaker Studio 2 project and returns its file structure"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
	)
}

func gmlContentTool() mcp.Tool {
	return mcp.NewTool("get_gml_file_content",
		mcp.WithDescription("Gets the content of a specific GML file"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to GML file (relative or absolute)"),
		),
	)
}

func roomInfoTool() mcp.Tool {
	return mcp.NewTool("get_room_info",
		mcp.WithDescription("Gets detailed room information from a .yy file"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("room_name",
			mcp.Required(),
			mcp.Description("Name of the room"),
		),
	)
}

func objectInfoTool() mcp.Tool {
	return mcp.NewTool("get_object_info",
		mcp.WithDescription("Gets detailed object information from a .yy file"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("object_name",
			mcp.Required(),
			mcp.Description("Name of the object"),
		),
	)
}

func spriteInfoTool() mcp.Tool {
	return mcp.NewTool("get_sprite_info",
		mcp.WithDescription("Gets sprite information including frames and metadata"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("sprite_name",
			mcp.Required(),
			mcp.Description("Name of the sprite"),
		),
	)
}

func exportDataTool() mcp.Tool {
	return mcp.NewTool("export_project_data",
		mcp.WithDescription("Exports all project data to text format (vibe2gml compatible)"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithBoolean("save_to_file",
			mcp.Description("Save result to file (default false)"),
			mcp.DefaultBool(false),
		),
		mcp.WithString("output_file",
			mcp.Description("Output file path (when save_to_file=true)"),
		),
	)
}

func listAssetsTool() mcp.Tool {
	cats := project.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Display
	}
	return mcp.NewTool("list_project_assets",
		mcp.WithDescription("Lists all project assets organized by category"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("category",
			mcp.Description("Filter by category"),
			mcp.Enum(names...),
		),
	)
}

func duplicateObjectTool() mcp.Tool {
	return mcp.NewTool("duplicate_object",
		mcp.WithDescription("Duplicates an existing GMS2 object with a new name, copies events, and registers it in the project"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("source_object",
			mcp.Required(),
			mcp.Description("Name of the object to duplicate"),
		),
		mcp.WithString("new_object_name",
			mcp.Required(),
			mcp.Description("Name for the new duplicated object"),
		),
		mcp.WithObject("property_overrides",
			mcp.Description(`Object variable values to change in the duplicate (e.g. {"target_yoffset": "-40"})`),
			mcp.AdditionalProperties(map[string]any{"type": "string"}),
		),
	)
}

func addInstanceTool() mcp.Tool {
	return mcp.NewTool("add_room_instance",
		mcp.WithDescription("Adds an object instance to a room at a specified position"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("room_name",
			mcp.Required(),
			mcp.Description("Name of the room to add the instance to"),
		),
		mcp.WithString("object_name",
			mcp.Required(),
			mcp.Description("Name of the object to instantiate"),
		),
		mcp.WithNumber("x",
			mcp.Required(),
			mcp.Description("X position in the room"),
		),
		mcp.WithNumber("y",
			mcp.Required(),
			mcp.Description("Y position in the room"),
		),
		mcp.WithNumber("scale_x",
			mcp.Description("Horizontal scale (default 1.0)"),
			mcp.DefaultNumber(1.0),
		),
		mcp.WithNumber("scale_y",
			mcp.Description("Vertical scale (default 1.0)"),
			mcp.DefaultNumber(1.0),
		),
		mcp.WithNumber("rotation",
			mcp.Description("Rotation in degrees (default 0.0)"),
			mcp.DefaultNumber(0.0),
		),
		mcp.WithString("layer_name",
			mcp.Description("Target layer name (default 'Instances')"),
			mcp.DefaultString("Instances"),
		),
		mcp.WithObject("property_overrides",
			mcp.Description("Object variable overrides for this instance"),
			mcp.AdditionalProperties(map[string]any{"type": "string"}),
		),
	)
}

func writeGmlTool() mcp.Tool {
	return mcp.NewTool("write_gml_file",
		mcp.WithDescription("Writes or updates the content of a GML file in the project"),
		mcp.WithString("project_path", mcp.Description(projectPathDesc)),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to GML file (relative to project root or absolute)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The GML code to write to the file"),
		),
	)
}
