package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newInvokeCmd(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <command> [json-args]",
		Short: "Run one front-end command in-process and print its JSON result",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw json.RawMessage
			if len(args) == 2 {
				if !json.Valid([]byte(args[1])) {
					return fmt.Errorf("arguments for %s are not valid JSON", args[0])
				}
				raw = json.RawMessage(args[1])
			}

			result, err := ctx.app.Invoke(cmd.Context(), args[0], raw)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}
}
