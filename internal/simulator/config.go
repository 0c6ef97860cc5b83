package simulator

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SweepFile is the HCL schema for a parameter sweep: an optional
// defaults block plus one experiment block per configuration to run.
//
//	defaults {
//	  hands    = 100000
//	  bankroll = 100000
//	}
//
//	experiment "flat" {
//	  regular_bet = 10
//	}
//
//	experiment "with-top" {
//	  regular_bet = 10
//	  top_bet     = 2
//	}
type SweepFile struct {
	Defaults    *ExperimentSettings `hcl:"defaults,block"`
	Experiments []Experiment        `hcl:"experiment,block"`
}

// ExperimentSettings are the tunable parameters of one experiment.
// Unset values fall back to the defaults block, then to the built-ins.
type ExperimentSettings struct {
	Hands         int     `hcl:"hands,optional"`
	HandsPerRound int     `hcl:"hands_per_round,optional"`
	Bankroll      float64 `hcl:"bankroll,optional"`
	RegularBet    float64 `hcl:"regular_bet,optional"`
	TopBet        float64 `hcl:"top_bet,optional"`
	BottomBet     float64 `hcl:"bottom_bet,optional"`
	AutoSurrender bool    `hcl:"auto_surrender,optional"`
	Decks         int     `hcl:"decks,optional"`
	Seed          int64   `hcl:"seed,optional"`
}

// Experiment is one labelled sweep entry. Field-for-field the same
// schema as ExperimentSettings; gohcl wants the label alongside flat
// fields rather than an embedded struct.
type Experiment struct {
	Name          string  `hcl:"name,label"`
	Hands         int     `hcl:"hands,optional"`
	HandsPerRound int     `hcl:"hands_per_round,optional"`
	Bankroll      float64 `hcl:"bankroll,optional"`
	RegularBet    float64 `hcl:"regular_bet,optional"`
	TopBet        float64 `hcl:"top_bet,optional"`
	BottomBet     float64 `hcl:"bottom_bet,optional"`
	AutoSurrender bool    `hcl:"auto_surrender,optional"`
	Decks         int     `hcl:"decks,optional"`
	Seed          int64   `hcl:"seed,optional"`
}

func (e Experiment) settings() ExperimentSettings {
	return ExperimentSettings{
		Hands:         e.Hands,
		HandsPerRound: e.HandsPerRound,
		Bankroll:      e.Bankroll,
		RegularBet:    e.RegularBet,
		TopBet:        e.TopBet,
		BottomBet:     e.BottomBet,
		AutoSurrender: e.AutoSurrender,
		Decks:         e.Decks,
		Seed:          e.Seed,
	}
}

// builtinDefaults backstop the defaults block itself.
var builtinDefaults = ExperimentSettings{
	Hands:         100000,
	HandsPerRound: 1,
	Bankroll:      100000,
	RegularBet:    MinRegularBet,
	Decks:         8,
}

// LoadSweepConfig parses an HCL sweep file and resolves every
// experiment into a full simulation Config.
func LoadSweepConfig(filename string) ([]NamedConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var sweep SweepFile
	diags = gohcl.DecodeBody(file.Body, nil, &sweep)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(sweep.Experiments) == 0 {
		return nil, fmt.Errorf("sweep file %s defines no experiments", filename)
	}

	defaults := builtinDefaults
	if sweep.Defaults != nil {
		defaults = mergeSettings(builtinDefaults, *sweep.Defaults)
	}

	configs := make([]NamedConfig, 0, len(sweep.Experiments))
	seen := make(map[string]bool)
	for _, exp := range sweep.Experiments {
		if seen[exp.Name] {
			return nil, fmt.Errorf("duplicate experiment name %q", exp.Name)
		}
		seen[exp.Name] = true

		settings := mergeSettings(defaults, exp.settings())
		configs = append(configs, NamedConfig{
			Name: exp.Name,
			Config: Config{
				Bankroll:      settings.Bankroll,
				TotalHands:    settings.Hands,
				HandsPerRound: settings.HandsPerRound,
				RegularBet:    settings.RegularBet,
				TopBet:        settings.TopBet,
				BottomBet:     settings.BottomBet,
				AutoSurrender: settings.AutoSurrender,
				NumDecks:      settings.Decks,
				Seed:          settings.Seed,
			},
		})
	}
	return configs, nil
}

// mergeSettings overlays any set field of over onto base. Boolean
// flags are ORed since HCL cannot distinguish false from unset.
func mergeSettings(base, over ExperimentSettings) ExperimentSettings {
	out := base
	if over.Hands != 0 {
		out.Hands = over.Hands
	}
	if over.HandsPerRound != 0 {
		out.HandsPerRound = over.HandsPerRound
	}
	if over.Bankroll != 0 {
		out.Bankroll = over.Bankroll
	}
	if over.RegularBet != 0 {
		out.RegularBet = over.RegularBet
	}
	if over.TopBet != 0 {
		out.TopBet = over.TopBet
	}
	if over.BottomBet != 0 {
		out.BottomBet = over.BottomBet
	}
	if over.AutoSurrender {
		out.AutoSurrender = true
	}
	if over.Decks != 0 {
		out.Decks = over.Decks
	}
	if over.Seed != 0 {
		out.Seed = over.Seed
	}
	return out
}
