// Command importer loads a vocabulary corpus file (JSON, CSV or Excel) into
// the local quiz database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/example/wordomikuji/internal/config"
	"github.com/example/wordomikuji/internal/database"
	"github.com/example/wordomikuji/internal/importer"
)

func main() {
	file := flag.String("file", "", "path to the corpus file (.json, .csv or .xlsx)")
	dbPath := flag.String("db", "", "path to the SQLite database (defaults to CLIENT_DB_PATH)")
	server := flag.Bool("server", false, "import into the server database (DATABASE_URL) so rankings can join the corpus")
	lang := flag.String("lang", "", "language for rows that don't carry one (defaults to QUIZ_LANGUAGE)")
	sheet := flag.String("sheet", "Sheet1", "Excel sheet name")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *lang == "" {
		*lang = cfg.Client.Language
	}

	dbCfg := cfg.ClientDatabase()
	if *server {
		dbCfg = cfg.ServerDatabase()
	} else if *dbPath != "" {
		dbCfg.DSN = *dbPath
	}

	if err := database.Connect(dbCfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	ensure := database.EnsureClientSchema
	if *server {
		ensure = database.EnsureServerSchema
	}
	if err := ensure(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	importCfg := importer.DefaultConfig(*file)
	importCfg.Language = *lang
	importCfg.SheetName = *sheet

	im := importer.New(database.NewVocabularyRepository())
	result, err := im.Import(context.Background(), importCfg)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Processed %d rows: %d created, %d updated, %d skipped\n",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped)
	for _, msg := range result.Errors {
		fmt.Printf("  - %s\n", msg)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}
