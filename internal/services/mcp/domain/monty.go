package domain

import (
	"context"
	"fmt"

	"github.com/anaitab/montyhall/internal/monty"
	"github.com/anaitab/montyhall/internal/monty/sim"
	"github.com/anaitab/montyhall/internal/platform/random"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// rulesVersion identifies the fixed ruleset exposed by the tools.
const rulesVersion = "1.0.0"

// Seed source labels reported back to clients.
const (
	seedSourceClient = "CLIENT"
	seedSourceServer = "SERVER"
)

// TrialInput represents the MCP tool input for a single trial.
type TrialInput struct {
	Seed *int64 `json:"seed,omitempty" jsonschema:"optional seed for a deterministic trial"`
}

// TrialRecord represents one strategy's outcome within a trial.
type TrialRecord struct {
	Strategy string `json:"strategy" jsonschema:"strategy name (stay or switch)"`
	Outcome  string `json:"outcome" jsonschema:"outcome name (win or lose)"`
}

// TrialResult represents the MCP tool output for a single trial.
type TrialResult struct {
	Arrangement []string      `json:"arrangement" jsonschema:"prize behind each door, in door order"`
	InitialPick int           `json:"initial_pick" jsonschema:"the contestant's initial door"`
	Revealed    int           `json:"revealed" jsonschema:"the goat door opened by the host"`
	Records     []TrialRecord `json:"records" jsonschema:"one record per strategy, stay first"`
	SeedUsed    int64         `json:"seed_used" jsonschema:"seed value used by the server"`
	SeedSource  string        `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
}

// SimulateInput represents the MCP tool input for a simulation run.
type SimulateInput struct {
	Trials int    `json:"trials" jsonschema:"number of trials to run"`
	Seed   *int64 `json:"seed,omitempty" jsonschema:"optional seed for a deterministic run"`
}

// StrategyReport represents one strategy's aggregate results.
type StrategyReport struct {
	Strategy string  `json:"strategy" jsonschema:"strategy name (stay or switch)"`
	Trials   int     `json:"trials" jsonschema:"number of trials for this strategy"`
	Wins     int     `json:"wins" jsonschema:"number of wins"`
	Losses   int     `json:"losses" jsonschema:"number of losses"`
	WinRate  float64 `json:"win_rate" jsonschema:"win proportion rounded to two decimals"`
	LossRate float64 `json:"loss_rate" jsonschema:"loss proportion rounded to two decimals"`
}

// SimulateResult represents the MCP tool output for a simulation run.
type SimulateResult struct {
	Trials     int            `json:"trials" jsonschema:"number of trials run"`
	Stay       StrategyReport `json:"stay" jsonschema:"aggregate results for staying"`
	Switch     StrategyReport `json:"switch" jsonschema:"aggregate results for switching"`
	SeedUsed   int64          `json:"seed_used" jsonschema:"seed value used by the server"`
	SeedSource string         `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
}

// RulesVersionInput represents the MCP tool input for ruleset metadata.
type RulesVersionInput struct{}

// RulesVersionResult represents the MCP tool output for ruleset metadata.
type RulesVersionResult struct {
	Game         string   `json:"game" jsonschema:"game name"`
	RulesVersion string   `json:"rules_version" jsonschema:"semantic ruleset version"`
	Doors        int      `json:"doors" jsonschema:"number of doors"`
	HostRule     string   `json:"host_rule" jsonschema:"host door-opening rule"`
	SwitchRule   string   `json:"switch_rule" jsonschema:"switch decision rule"`
	Strategies   []string `json:"strategies" jsonschema:"supported strategies"`
	Outcomes     []string `json:"outcomes" jsonschema:"supported outcomes"`
}

// TrialTool defines the MCP tool schema for running one trial.
func TrialTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "monty_trial",
		Description: "Runs one Monty Hall trial and reports both strategies",
	}
}

// SimulateTool defines the MCP tool schema for running a simulation.
func SimulateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "monty_simulate",
		Description: "Runs many Monty Hall trials and reports win proportions",
	}
}

// RulesVersionTool defines the MCP tool schema for ruleset metadata.
func RulesVersionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "monty_rules_version",
		Description: "Describes the Monty Hall ruleset semantics",
	}
}

// TrialHandler executes a single trial.
func TrialHandler() mcp.ToolHandlerFor[TrialInput, TrialResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TrialInput) (*mcp.CallToolResult, TrialResult, error) {
		seed, source, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, TrialResult{}, err
		}

		trial, err := monty.RunTrial(monty.TrialRequest{Seed: seed})
		if err != nil {
			return nil, TrialResult{}, fmt.Errorf("run trial: %w", err)
		}

		arrangement := make([]string, 0, monty.DoorCount)
		for door := monty.Door(1); door <= monty.DoorCount; door++ {
			arrangement = append(arrangement, trial.Arrangement.Prize(door).String())
		}

		records := make([]TrialRecord, 0, len(trial.Records))
		for _, record := range trial.Records {
			records = append(records, TrialRecord{
				Strategy: record.Strategy.String(),
				Outcome:  record.Outcome.String(),
			})
		}

		return nil, TrialResult{
			Arrangement: arrangement,
			InitialPick: int(trial.InitialPick),
			Revealed:    int(trial.Revealed),
			Records:     records,
			SeedUsed:    seed,
			SeedSource:  source,
		}, nil
	}
}

// SimulateHandler executes a simulation run.
func SimulateHandler() mcp.ToolHandlerFor[SimulateInput, SimulateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SimulateInput) (*mcp.CallToolResult, SimulateResult, error) {
		seed, source, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, SimulateResult{}, err
		}

		result, err := sim.Run(sim.Request{Trials: input.Trials, Seed: seed})
		if err != nil {
			return nil, SimulateResult{}, fmt.Errorf("run simulation: %w", err)
		}

		return nil, SimulateResult{
			Trials:     input.Trials,
			Stay:       strategyReport(monty.StrategyStay, result.Summary.Stay),
			Switch:     strategyReport(monty.StrategySwitch, result.Summary.Switch),
			SeedUsed:   seed,
			SeedSource: source,
		}, nil
	}
}

// RulesVersionHandler reports the fixed ruleset metadata.
func RulesVersionHandler() mcp.ToolHandlerFor[RulesVersionInput, RulesVersionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RulesVersionInput) (*mcp.CallToolResult, RulesVersionResult, error) {
		return nil, RulesVersionResult{
			Game:         "Monty Hall",
			RulesVersion: rulesVersion,
			Doors:        monty.DoorCount,
			HostRule:     "host opens a goat door that is not the contestant's pick; when the pick hides the car the host chooses between the two goat doors uniformly at random",
			SwitchRule:   "switching takes the one door that is neither revealed nor initially picked",
			Strategies:   []string{monty.StrategyStay.String(), monty.StrategySwitch.String()},
			Outcomes:     []string{monty.OutcomeWin.String(), monty.OutcomeLose.String()},
		}, nil
	}
}

// resolveSeed uses the client seed when provided and draws a crypto seed
// otherwise.
func resolveSeed(clientSeed *int64) (int64, string, error) {
	if clientSeed != nil {
		return *clientSeed, seedSourceClient, nil
	}
	seed, err := random.NewSeed()
	if err != nil {
		return 0, "", fmt.Errorf("generate seed: %w", err)
	}
	return seed, seedSourceServer, nil
}

func strategyReport(strategy monty.Strategy, summary sim.StrategySummary) StrategyReport {
	return StrategyReport{
		Strategy: strategy.String(),
		Trials:   summary.Trials,
		Wins:     summary.Wins,
		Losses:   summary.Losses,
		WinRate:  summary.WinRate,
		LossRate: summary.LossRate,
	}
}
