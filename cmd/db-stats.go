package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/spf13/cobra"
)

var dbStatsCmd = &cobra.Command{
	Use:   "db-stats",
	Short: "Show database statistics",
	Long:  `Display the number of users, gigs and RSVPs stored in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		db, err := database.New(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close() //nolint: errcheck

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get database stats: %w", err)
		}

		fmt.Println("Database Statistics:")
		fmt.Printf("Users: %s (%s admins)\n", humanize.Comma(stats.Users), humanize.Comma(stats.Admins))
		fmt.Printf("Gigs: %s (%s upcoming)\n", humanize.Comma(stats.Gigs), humanize.Comma(stats.UpcomingGigs))
		fmt.Printf("RSVPs: %s\n", humanize.Comma(stats.RSVPs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbStatsCmd)
}
