package main

import (
	"github.com/spf13/cobra"

	"github.com/latexnn/modelpost/pkg/upload"
)

func newBackwardCmd(a *app) *cobra.Command {
	var p upload.BackwardParams

	cmd := &cobra.Command{
		Use:   "backward",
		Short: "Upload a model and its symbol map to /backward",
		Long: `Request the back-propagation formula for one layer node.

The model and the symbol map returned by an earlier parse are posted as the
"model" and "symbol" parts. Status and raw body are printed as for parse.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, closeIdle := a.uploader()
			defer closeIdle()

			p.ModelPath = a.cfg.ModelPath
			p.Depth = a.cfg.Depth
			return a.send(cmd.Context(), u, upload.BackwardRequest(a.cfg.ServiceURL, p))
		},
	}

	cmd.Flags().StringVar(&p.SymbolPath, "symbol", "", "symbol map file from a previous parse")
	cmd.Flags().IntVar(&p.LayerNode, "layer-node", 0, "layer node to differentiate")
	cmd.Flags().IntSliceVar(&p.LayerIdxs, "layer-idx", nil, "layer indexes (repeatable or comma separated)")
	cmd.Flags().IntSliceVar(&p.WeightIdxs, "weight-idx", nil, "weight indexes (repeatable or comma separated)")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("layer-node")

	return cmd
}
