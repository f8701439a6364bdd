package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gkalanidhi/maplens/database"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	Long: `Check if the catalog database is accessible and responsive.

Examples:
  maplens health                    # Check default database connection
  maplens health --timeout 10s      # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkDatabaseHealth(); err != nil {
			fmt.Printf("❌ Database health check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Database is healthy and accessible")
	},
}

var healthTimeout time.Duration

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "Timeout for health check")
}

func checkDatabaseHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	pool, err := database.GetPool()
	if err != nil {
		return fmt.Errorf("failed to get database pool: %v", err)
	}

	// Test connection with a simple query
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	// Check if mapping_catalog table exists (indicates maplens is set up)
	var tableExists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = 'mapping_catalog'
	)`

	if err := pool.QueryRow(ctx, query).Scan(&tableExists); err != nil {
		return fmt.Errorf("failed to check mapping_catalog table: %v", err)
	}

	if !tableExists {
		fmt.Println("⚠️  Database is accessible but mapping_catalog table not found")
		fmt.Println("   Run 'maplens catalog <file.xml>' to register your first mapping")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM mapping_catalog").Scan(&count); err != nil {
		return fmt.Errorf("failed to count registered mappings: %v", err)
	}

	fmt.Printf("📊 Found %d registered mappings\n", count)

	return nil
}
