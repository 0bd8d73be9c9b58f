package mcp

import (
	"github.com/2beens/liftplan/internal/planner"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the liftplan tools: schema, plan
// preview, single exercise resolution and capacity inference. Plans
// previewed here are never stored.
func NewServer(pool *pgxpool.Pool, assembler *planner.Assembler) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), assembler)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftplan",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_liftplan_context",
		Description: "Returns the DB schema for liftplan tables (pattern_capacity, weekly_plan, set_log, exercise_modification): table names, columns, types, nullable, default.",
	}, h.GetLiftplanContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "generate_plan_preview",
		Description: "Generates a weekly training plan for the given profile, frequency and pain reports without storing it. Returns the plan and the decisions taken while building it (inferred capacities, substitutions, dropped correctives).",
	}, h.GeneratePlanPreviewTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "resolve_exercise",
		Description: "Prescribes one movement pattern (variant, sets, reps, rest, load) for the given profile and pains, with correctives when pain calls for them. Use to see what a single slot of a plan would hold.",
	}, h.ResolveExerciseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "infer_capacities",
		Description: "Estimates starting capacities for every pattern from body mass and level when nothing was tested.",
	}, h.InferCapacitiesTool())

	return s
}
