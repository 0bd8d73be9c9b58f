package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/liftplan/internal/planner"
	"github.com/2beens/liftplan/internal/training"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// ProfileInput is the athlete description shared by the planning tools.
type ProfileInput struct {
	BodyMassKg     float64  `json:"body_mass_kg" jsonschema:"Body mass in kilograms"`
	Level          string   `json:"level" jsonschema:"Training level: beginner, intermediate or advanced"`
	Goals          []string `json:"goals,omitempty" jsonschema:"Up to three goals in priority order (e.g. strength, hypertrophy, fat_loss)"`
	Location       string   `json:"location,omitempty" jsonschema:"gym or home, defaults to gym"`
	Equipment      []string `json:"equipment,omitempty" jsonschema:"Home equipment: barbell, dumbbells, machines, pullup_bar, sturdy_table, bands"`
	Population     string   `json:"population,omitempty" jsonschema:"Special population (pregnancy, postpartum, motor_recovery, disability, menopause)"`
	SessionMinutes int      `json:"session_minutes,omitempty" jsonschema:"Time limit for a session in minutes"`
}

type PainInput struct {
	Area     string `json:"area" jsonschema:"Body area (e.g. knee, lower_back, shoulder)"`
	Severity int    `json:"severity" jsonschema:"Pain severity from 1 to 10"`
}

// PlanPreviewInput is the input for generate_plan_preview.
type PlanPreviewInput struct {
	Profile   ProfileInput `json:"profile"`
	Frequency int          `json:"frequency" jsonschema:"Training days per week (2-6)"`
	Pains     []PainInput  `json:"pains,omitempty" jsonschema:"Current pain reports"`
}

// ResolveExerciseInput is the input for resolve_exercise.
type ResolveExerciseInput struct {
	Profile  ProfileInput `json:"profile"`
	Pattern  string       `json:"pattern" jsonschema:"Movement pattern (e.g. lower_push, horizontal_pull, core)"`
	DayIndex int          `json:"day_index,omitempty" jsonschema:"Day of the week in the plan, selects heavy/volume/moderate"`
	Pains    []PainInput  `json:"pains,omitempty" jsonschema:"Current pain reports"`
}

// InferCapacitiesInput is the input for infer_capacities.
type InferCapacitiesInput struct {
	Profile ProfileInput `json:"profile"`
}

// GetLiftplanContextTool returns the MCP tool handler for get_liftplan_context.
func (h *Handler) GetLiftplanContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// GeneratePlanPreviewTool returns the MCP tool handler for generate_plan_preview.
func (h *Handler) GeneratePlanPreviewTool() func(context.Context, *mcp.CallToolRequest, PlanPreviewInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PlanPreviewInput) (*mcp.CallToolResult, any, error) {
		profile, err := toProfile(in.Profile)
		if err != nil {
			return errorResult("Invalid profile: " + err.Error()), nil, nil
		}
		pains, err := toPains(in.Pains)
		if err != nil {
			return errorResult("Invalid pains: " + err.Error()), nil, nil
		}

		preview := h.service.PreviewPlan(ctx, planner.Request{
			Profile:   profile,
			Pains:     pains,
			Frequency: in.Frequency,
		})
		return jsonResult(preview), nil, nil
	}
}

// ResolveExerciseTool returns the MCP tool handler for resolve_exercise.
func (h *Handler) ResolveExerciseTool() func(context.Context, *mcp.CallToolRequest, ResolveExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ResolveExerciseInput) (*mcp.CallToolResult, any, error) {
		pattern, err := training.ParsePattern(in.Pattern)
		if err != nil {
			return errorResult("Invalid pattern: " + err.Error()), nil, nil
		}
		profile, err := toProfile(in.Profile)
		if err != nil {
			return errorResult("Invalid profile: " + err.Error()), nil, nil
		}
		pains, err := toPains(in.Pains)
		if err != nil {
			return errorResult("Invalid pains: " + err.Error()), nil, nil
		}

		res, err := h.service.ResolveExercise(ctx, planner.ExerciseRequest{
			Profile:  profile,
			Pains:    pains,
			Pattern:  pattern,
			DayIndex: in.DayIndex,
		})
		if err != nil {
			return errorResult("Error resolving exercise: " + err.Error()), nil, nil
		}
		return jsonResult(res), nil, nil
	}
}

// InferCapacitiesTool returns the MCP tool handler for infer_capacities.
func (h *Handler) InferCapacitiesTool() func(context.Context, *mcp.CallToolRequest, InferCapacitiesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in InferCapacitiesInput) (*mcp.CallToolResult, any, error) {
		profile, err := toProfile(in.Profile)
		if err != nil {
			return errorResult("Invalid profile: " + err.Error()), nil, nil
		}
		return jsonResult(h.service.InferCapacities(ctx, profile, nil)), nil, nil
	}
}

func toProfile(in ProfileInput) (training.UserProfile, error) {
	level, err := training.ParseLevel(in.Level)
	if err != nil {
		return training.UserProfile{}, err
	}

	location := training.Gym
	if in.Location != "" {
		if location, err = training.ParseLocation(in.Location); err != nil {
			return training.UserProfile{}, err
		}
	}

	var equipment training.Equipment
	for _, e := range in.Equipment {
		switch strings.ToLower(strings.TrimSpace(e)) {
		case "barbell":
			equipment.Barbell = true
		case "dumbbells", "dumbbell":
			equipment.Dumbbells = true
		case "machines", "machine":
			equipment.Machines = true
		case "pullup_bar":
			equipment.PullupBar = true
		case "sturdy_table", "table":
			equipment.SturdyTable = true
		case "bands", "band":
			equipment.Bands = true
		default:
			return training.UserProfile{}, fmt.Errorf("unknown equipment %q", e)
		}
	}

	goals := make([]training.Goal, 0, len(in.Goals))
	for _, g := range in.Goals {
		goals = append(goals, training.ParseGoal(g))
	}

	return training.UserProfile{
		BodyMassKg:     in.BodyMassKg,
		Level:          level,
		Goals:          goals,
		Location:       location,
		Equipment:      equipment,
		Population:     training.Population(strings.ToLower(in.Population)),
		SessionMinutes: in.SessionMinutes,
	}, nil
}

func toPains(in []PainInput) ([]training.PainEntry, error) {
	pains := make([]training.PainEntry, 0, len(in))
	for _, p := range in {
		area, err := training.ParseBodyArea(p.Area)
		if err != nil {
			return nil, err
		}
		entry := training.PainEntry{Area: area, Severity: p.Severity}
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		pains = append(pains, entry)
	}
	return pains, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
