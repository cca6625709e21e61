package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/datavisbr/painel-salarios/internal/cli/config"
	"github.com/datavisbr/painel-salarios/internal/store"
)

// StatsOptions holds options for the stats command.
type StatsOptions struct {
	Output       string
	Anos         []int
	Senioridades []string
	Contratos    []string
	Tamanhos     []string
	Cargos       []string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print summary statistics for the salary dataset",
		Long: `Load the salary dataset and print the metric summary and the top
paying job titles, optionally filtered, without starting the server.`,
		Example: `  # Full dataset summary
  painel stats

  # Senior salaries in 2025, as JSON
  painel stats --ano 2025 --senioridade Senior --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "table", "Output format (table|csv|markdown|json)")
	cmd.Flags().IntSliceVar(&opts.Anos, "ano", nil, "Filter by year (repeatable)")
	cmd.Flags().StringSliceVar(&opts.Senioridades, "senioridade", nil, "Filter by seniority (repeatable)")
	cmd.Flags().StringSliceVar(&opts.Contratos, "contrato", nil, "Filter by contract type (repeatable)")
	cmd.Flags().StringSliceVar(&opts.Tamanhos, "tamanho", nil, "Filter by company size (repeatable)")
	cmd.Flags().StringSliceVar(&opts.Cargos, "cargo", nil, "Filter by job title (repeatable)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "csv", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runStats(cmd *cobra.Command, opts *StatsOptions) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	ctx := cmd.Context()

	st, _, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	defer func() { _ = st.Close() }()

	f := store.Filter{
		Anos:            opts.Anos,
		Senioridades:    opts.Senioridades,
		Contratos:       opts.Contratos,
		TamanhosEmpresa: opts.Tamanhos,
		Cargos:          opts.Cargos,
	}

	snap, err := st.Metrics(ctx, f)
	if err != nil {
		return err
	}
	top, err := st.TopCargos(ctx, f, 10)
	if err != nil {
		return err
	}

	if opts.Output == "json" {
		out := struct {
			Metricas  store.Snapshot     `json:"metricas"`
			TopCargos []store.CargoMedia `json:"top_cargos"`
		}{snap, top}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	metricas := table.NewWriter()
	metricas.SetStyle(table.StyleLight)
	metricas.AppendHeader(table.Row{"Métrica", "Valor"})
	metricas.AppendRows([]table.Row{
		{"Registros", snap.TotalRegistros},
		{"Salário médio (USD)", fmt.Sprintf("%.2f", snap.SalarioMedio)},
		{"Salário mediano (USD)", fmt.Sprintf("%.2f", snap.SalarioMediano)},
		{"Salário mínimo (USD)", fmt.Sprintf("%.2f", snap.SalarioMinimo)},
		{"Salário máximo (USD)", fmt.Sprintf("%.2f", snap.SalarioMaximo)},
		{"Desvio padrão", fmt.Sprintf("%.2f", snap.DesvioPadrao)},
		{"Percentil 25", fmt.Sprintf("%.2f", snap.Percentil25)},
		{"Percentil 75", fmt.Sprintf("%.2f", snap.Percentil75)},
		{"Cargo mais frequente", snap.CargoMaisComum},
		{"Cargos únicos", snap.CargosUnicos},
		{"Variação anual", fmt.Sprintf("%+.1f%%", snap.VariacaoAnual)},
	})

	cargos := table.NewWriter()
	cargos.SetStyle(table.StyleLight)
	cargos.AppendHeader(table.Row{"#", "Cargo", "Salário médio (USD)"})
	for i, c := range top {
		cargos.AppendRow(table.Row{i + 1, c.Cargo, fmt.Sprintf("%.2f", c.Media)})
	}

	out := cmd.OutOrStdout()
	switch opts.Output {
	case "csv":
		fmt.Fprintln(out, metricas.RenderCSV())
		fmt.Fprintln(out, cargos.RenderCSV())
	case "markdown":
		fmt.Fprintln(out, metricas.RenderMarkdown())
		fmt.Fprintln(out, cargos.RenderMarkdown())
	default:
		fmt.Fprintln(out, metricas.Render())
		fmt.Fprintln(out, cargos.Render())
	}

	return nil
}
