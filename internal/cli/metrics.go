package cli

import (
	"io"

	"github.com/rileyhilliard/allocview/internal/config"
	"github.com/rileyhilliard/allocview/internal/errors"
	"github.com/rileyhilliard/allocview/internal/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// metricsReport is the output of the metrics command.
type metricsReport struct {
	Source  string        `yaml:"source" json:"source"`
	Metrics []metricEntry `yaml:"metrics" json:"metrics"`
}

type metricEntry struct {
	metrics.Descriptor `yaml:",inline"`
	Value              uint64 `yaml:"value" json:"value"`
}

// newMetricsCmd creates the metrics command
func newMetricsCmd(v *viper.Viper) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List the tracked metrics and their current values",
		Long: `Describe every metric the dashboard tracks for the selected source,
with one sample of its current value in bytes.

Output is YAML unless --json is given.

Examples:
  allocview metrics
  allocview metrics --source process --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return metricsCommand(cmd.OutOrStdout(), cfg.Source, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// metricsCommand samples every default metric of source once and writes the
// report to w.
func metricsCommand(w io.Writer, source string, asJSON bool) error {
	report, err := buildMetricsReport(source)
	if err != nil {
		if asJSON {
			_ = WriteJSONFromError(w, err)
		}
		return err
	}

	if asJSON {
		return WriteJSONSuccess(w, report)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func buildMetricsReport(source string) (*metricsReport, error) {
	catalog, err := metrics.Catalog(source)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrResolution,
			"Can't describe metric source '"+source+"'",
			"Use --source runtime or --source process.")
	}

	src, err := metrics.NewSource(source)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrResolution,
			"Can't open metric source '"+source+"'",
			"Use --source runtime or --source process.")
	}

	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}
	handles, err := metrics.New(src, names)
	if err != nil {
		return nil, err
	}
	if err := handles.Advance(); err != nil {
		return nil, err
	}

	report := &metricsReport{Source: source, Metrics: make([]metricEntry, len(catalog))}
	for i, d := range catalog {
		v, err := handles.Read(i)
		if err != nil {
			return nil, err
		}
		report.Metrics[i] = metricEntry{Descriptor: d, Value: uint64(max(v, 0))}
	}
	return report, nil
}
