package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/logandonley/fontlist/pkg/fontlist"
)

func newListCmd(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fonts := fontlist.ListFonts(ctx.app.Catalog())

			switch resolveFormat(format, cmd.OutOrStdout()) {
			case "json":
				return writeJSON(cmd, fonts)
			case "table":
				return writeFontTable(cmd.OutOrStdout(), fonts)
			default:
				return fmt.Errorf("unsupported format %q (use auto, table or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "auto", "Output format: auto, table or json")
	return cmd
}

// resolveFormat picks a table for terminals and JSON for pipes when format
// is auto
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if file, ok := w.(*os.File); ok {
		fd := file.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return "table"
		}
	}
	return "json"
}

func writeFontTable(w io.Writer, fonts []fontlist.Font) error {
	if len(fonts) == 0 {
		_, err := fmt.Fprintln(w, "No fonts installed")
		return err
	}

	sorted := slices.Clone(fonts)
	slices.SortFunc(sorted, func(a, b fontlist.Font) int {
		return cmp.Or(cmp.Compare(a.Family, b.Family), cmp.Compare(a.Style, b.Style))
	})

	rows := make([][]string, 0, len(sorted))
	for _, font := range sorted {
		rows = append(rows, []string{font.Family, font.Style})
	}

	if _, err := fmt.Fprintln(w, renderTable([]string{"Family", "Style"}, rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strconv.Itoa(len(fonts))+" fonts")
	return err
}
