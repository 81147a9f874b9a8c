/*
Copyright © 2026 Michael Putera Wardana <michaelputeraw@gmail.com>
*/
package cmd

import (
	"github.com/krobus00/order-splitter-service/internal/bootstrap"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the order splitter HTTP server",
	Long: `Starts the HTTP server exposing the order splitting API: order creation
with portfolio allocation and market-open scheduling, historic order listing
and point lookup by order id. Requires an X-API-Key header on all order
routes.`,
	Run: bootstrap.StartServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
