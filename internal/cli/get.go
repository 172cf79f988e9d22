package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dvcrn/ht/internal/render"
	"github.com/dvcrn/ht/internal/request"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := request.ParseURL(args[0])
			if err != nil {
				return err
			}

			resp, err := newClient().Get(cmd.Context(), url)
			if err != nil {
				return err
			}
			return render.New(cmd.OutOrStdout()).Response(resp)
		},
	}
}

// newClient builds the one client used for the whole invocation. The
// request ID lets a response be correlated against server logs.
func newClient() *request.Client {
	return request.NewClient(request.Options{
		UserAgent: "ht/" + Version,
		RequestID: uuid.NewString(),
	})
}
