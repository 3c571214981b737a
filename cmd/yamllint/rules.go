package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/linter/rules"
)

var rulesFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules",
	Long:  "Display all built-in rules with their default level and options",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&rulesFormat, "format", "table", "Output format: table, json")
}

type ruleInfo struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Level       string       `json:"level"`
	Options     []optionInfo `json:"options"`
}

type optionInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Default     interface{} `json:"default"`
	Choices     []string    `json:"choices,omitempty"`
	Description string      `json:"description"`
}

func describeRules() []ruleInfo {
	registry := linter.NewRuleRegistry()
	rules.RegisterDefaultRules(registry)

	infos := make([]ruleInfo, 0, registry.Len())
	for _, r := range registry.GetAllRules() {
		info := ruleInfo{
			ID:          r.ID(),
			Description: r.Description(),
			Level:       string(r.Severity()),
			Options:     make([]optionInfo, 0, len(r.Options())),
		}
		for _, o := range r.Options() {
			info.Options = append(info.Options, optionInfo{
				Name:        o.Name,
				Type:        o.Type.String(),
				Default:     o.Default,
				Choices:     o.Choices,
				Description: o.Description,
			})
		}
		infos = append(infos, info)
	}
	return infos
}

func runRules(cmd *cobra.Command, args []string) error {
	infos := describeRules()

	switch rulesFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case "table":
		return outputRulesTable(cmd.OutOrStdout(), infos)
	default:
		return fmt.Errorf("unknown output format: %s", rulesFormat)
	}
}

func outputRulesTable(out io.Writer, infos []ruleInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "ID\tLevel\tOptions\tDescription\n")
	fmt.Fprintf(w, "--\t-----\t-------\t-----------\n")

	for _, info := range infos {
		options := make([]string, 0, len(info.Options))
		for _, o := range info.Options {
			options = append(options, fmt.Sprintf("%s=%v", o.Name, o.Default))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Level, strings.Join(options, " "), info.Description)
	}

	return w.Flush()
}
