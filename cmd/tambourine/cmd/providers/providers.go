package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"tambourine/internal/api/dto"
	"tambourine/internal/app"
	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var output string

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", formatTable, "output format: table, json or yaml")
}

// Cmd represents the providers command
var Cmd = &cobra.Command{
	Use:   "providers",
	Short: "List the providers available with the current credentials",
	Long: `List the providers available with the current credentials

- Builds the registries exactly as serve does, without starting the server
- JSON output matches GET /api/providers/available`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, err := config.InitializeConfig()
		if err != nil {
			return err
		}
		// Keep construction logs off the listing unless asked for.
		settings.LogLevel = "error"
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			settings.LogLevel = "debug"
		}

		service, cleanup, err := app.InitializeProviderService(settings, app.LoadCredentials(provider.DefaultCatalog()))
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		defer cleanup()

		resp, err := service.ListAvailable(context.Background())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp, output)
	},
}

func render(w io.Writer, resp *dto.AvailableProvidersResponse, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		return renderTable(w, resp)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, resp *dto.AvailableProvidersResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPROVIDER\tLABEL\tLOCAL\tMODEL")

	rows := map[provider.Kind][]dto.ProviderInfo{
		provider.KindSTT: resp.STT,
		provider.KindLLM: resp.LLM,
	}
	for _, kind := range provider.Kinds {
		for _, info := range rows[kind] {
			model := info.Model
			if model == "" {
				model = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", kind, info.Value, info.Label, info.IsLocal, model)
		}
	}
	return tw.Flush()
}
