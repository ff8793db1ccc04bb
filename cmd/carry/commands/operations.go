package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>...",
		Short: "Download the first available cache archive",
		Long: "Try each URL in order and keep the first archive that downloads. " +
			"The URL suffix (.tbz, .tgz, .tzst) selects the compression.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.runOperation(domain.OperationFetch),
	}
}

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Track paths, restore them from the fetched archive and record a baseline",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.runOperation(domain.OperationAdd),
	}
}

func (c *CLI) newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <url>",
		Short: "Pack and upload the tracked paths if they changed",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runOperation(domain.OperationPush),
	}
}

func invalidTimeout(seconds int) error {
	return zerr.With(zerr.With(domain.ErrInvalidArguments, "flag", timeoutFlag), "value", seconds)
}
