package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gocst/internal/ui/pretty"
)

// HelpFormatter renders cobra help and usage with the CLI's styles.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- with flags (localFlags .)}}

{{ heading "Flags:" }}
{{ . }}
{{- end}}

{{- with flags (globalFlags .)}}

{{ heading "Global Flags:" }}
{{ . }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":      h.styles.SummaryTitle.Render,
		"command":      h.styles.Bold.Render,
		"subcommand":   h.styles.RuleID.Render,
		"dim":          h.styles.Dim.Render,
		"flags":        h.flagUsages,
		"localFlags":   localFlags,
		"globalFlags":  globalFlags,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespace,
	}
}

// flagUsages lays out a flag set in two columns with flag names styled.
// An empty or fully hidden set yields "".
func (h *HelpFormatter) flagUsages(flags *pflag.FlagSet) string {
	type row struct {
		names, usage string
		width        int
	}
	var rows []row
	widest := 0

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		varname, usage := pflag.UnquoteUsage(f)

		plain := "    --" + f.Name
		names := "    " + h.styles.Location.Render("--"+f.Name)
		if f.Shorthand != "" {
			plain = "-" + f.Shorthand + ", --" + f.Name
			names = h.styles.Location.Render("-"+f.Shorthand) + ", " + h.styles.Location.Render("--"+f.Name)
		}
		if varname != "" {
			plain += " " + varname
			names += " " + h.styles.Dim.Render(varname)
		}
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" && f.DefValue != "0" {
			usage += h.styles.Dim.Render(fmt.Sprintf(" (default %s)", f.DefValue))
		}

		rows = append(rows, row{names: names, usage: usage, width: len(plain)})
		widest = max(widest, len(plain))
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, "  "+r.names+strings.Repeat(" ", widest-r.width+3)+r.usage)
	}
	return strings.Join(lines, "\n")
}

// localFlags returns the flags that belong to cmd alone. The root's
// persistent flags are listed as global instead.
func localFlags(cmd *cobra.Command) *pflag.FlagSet {
	if cmd.HasParent() {
		return cmd.LocalFlags()
	}
	return cmd.LocalNonPersistentFlags()
}

// globalFlags returns the flags shared by every command.
func globalFlags(cmd *cobra.Command) *pflag.FlagSet {
	if cmd.HasParent() {
		return cmd.InheritedFlags()
	}
	return cmd.PersistentFlags()
}

// ApplyToCommand installs the styled help and usage on cmd. Subcommands
// inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStderr(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(s string, padding int) string {
	if len(s) >= padding {
		return s
	}
	return s + strings.Repeat(" ", padding-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
