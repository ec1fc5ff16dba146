package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "holidays-server",
	Short: "Ajuman Holidays booking and admin backend",
	Long:  "Booking/admin backend for the bus-travel business: customers, bookings, fleet, payments and notifications.",
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
