package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show cmdward's catalog, config, and audit log state",
	Long: `status reports the built-in check catalog's composition, the active
config directory, and the audit log's location and size.

  cmdward status`,
	RunE: statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	cfg, cfgErr := config.Load(logPathFlag)

	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("  cmdward status")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	binPath, err := os.Executable()
	if err != nil {
		binPath = "unknown"
	}
	fmt.Printf("  Binary: %s (%s)\n", binPath, Version)

	configDir := config.DefaultConfigDir
	if cfg != nil {
		configDir = cfg.ConfigDir
	}
	fmt.Printf("  Config: %s\n", configDir)
	fmt.Println()

	fmt.Println("─── Check Catalog ──────────────────────────────────────")
	cat := catalog.MustLoad()
	fmt.Printf("  %d checks across %d groups\n", cat.Len(), len(cat.Groups()))
	for _, g := range cat.Groups() {
		fmt.Printf("    %-14s %d\n", g, len(cat.ByGroup(g)))
	}
	fmt.Println()

	fmt.Println("─── Policy ─────────────────────────────────────────────")
	if cfg != nil {
		fmt.Printf("  Config severities:   %v\n", cfg.Severities)
		fmt.Printf("  Default challenge:   %s\n", cfg.ChallengeType)
		if len(cfg.DenyPatterns) > 0 {
			fmt.Printf("  Deny patterns:       %v\n", cfg.DenyPatterns)
		} else {
			fmt.Println("  Deny patterns:       none configured")
		}
	} else {
		fmt.Printf("  ⚠  failed to load config: %v\n", cfgErr)
	}
	fmt.Println()

	fmt.Println("─── Audit Log ──────────────────────────────────────────")
	auditPath := ""
	if cfg != nil {
		auditPath = cfg.LogPath
	}
	checkAuditLog(auditPath)
	fmt.Println()

	return nil
}

func checkAuditLog(path string) {
	if path == "" {
		fmt.Println("  ⬚  no audit log path configured")
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  ⬚  %s (not yet created — will start on first event)\n", path)
		return
	}

	sizeKB := info.Size() / 1024
	if sizeKB == 0 {
		fmt.Printf("  ✅ %s (<1 KB)\n", path)
	} else {
		fmt.Printf("  ✅ %s (%d KB)\n", path, sizeKB)
	}
}
