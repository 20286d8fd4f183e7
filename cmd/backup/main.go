package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"notebook/internal/config"
	"notebook/internal/database"
	"notebook/internal/service"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	exportRemote := exportCmd.Bool("remote", false, "Export from the remote tier instead of the local database")

	importInput := importCmd.String("input", "", "Input file path (required)")
	importRemote := importCmd.Bool("remote", false, "Import into the remote tier instead of the local database")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		db := openTier(cfg, *exportRemote)
		defer db.Close()
		handleExport(service.NewBackupService(db), *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		db := openTier(cfg, *importRemote)
		defer db.Close()
		handleImport(service.NewBackupService(db), *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func openTier(cfg *config.Config, remote bool) *database.DB {
	var db *database.DB
	var err error

	if remote {
		if !cfg.RemoteEnabled() {
			log.Fatal("Remote tier is not configured (set DATABASE_TYPE and DATABASE_URL)")
		}
		db, err = database.OpenRemote(cfg.DatabaseType, cfg.DatabaseURL)
	} else {
		db, err = database.OpenLocal(cfg.LocalDBPath)
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func handleExport(backups *service.BackupService, outputPath string) {
	if outputPath == "" {
		outputPath = fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	log.Printf("Exporting database to: %s", outputPath)
	backup, err := backups.Export(outputPath)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Printf("Export complete: %d words, %d spelling histories, %d bank entries, %d exam records",
		len(backup.Words), len(backup.Spelling), len(backup.Bank), len(backup.Exams))
}

func handleImport(backups *service.BackupService, inputPath string) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	// Import replaces everything, make the operator confirm
	fmt.Print("WARNING: importing replaces all existing data. Type 'yes' to confirm: ")
	var confirmation string
	fmt.Scanln(&confirmation)
	if confirmation != "yes" {
		log.Println("Import cancelled")
		return
	}

	log.Printf("Importing database from: %s", inputPath)
	backup, err := backups.Import(inputPath)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete: %d words, %d spelling histories, %d bank entries, %d exam records",
		len(backup.Words), len(backup.Spelling), len(backup.Bank), len(backup.Exams))
}

func printUsage() {
	fmt.Println("Family Notebook Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export the dataset to a JSON file")
	fmt.Println("  backup import [options]    Import a dataset from a JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println("  -remote           Export from the remote tier")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println("  -remote           Import into the remote tier")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_PATH          SQLite database path (default: ./notebook.db)")
	fmt.Println("  DATABASE_TYPE    Remote database type: postgres or mysql")
	fmt.Println("  DATABASE_URL     Remote database connection URL")
}
