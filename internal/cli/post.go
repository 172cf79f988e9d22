package cli

import (
	"github.com/spf13/cobra"

	"github.com/dvcrn/ht/internal/render"
	"github.com/dvcrn/ht/internal/request"
)

func newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [key=value ...]",
		Short: "Send a POST request with a JSON body built from key=value pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := request.ParseURL(args[0])
			if err != nil {
				return err
			}
			pairs, err := request.ParseKVPairs(args[1:])
			if err != nil {
				return err
			}

			resp, err := newClient().Post(cmd.Context(), url, pairs)
			if err != nil {
				return err
			}
			return render.New(cmd.OutOrStdout()).Response(resp)
		},
	}
}
