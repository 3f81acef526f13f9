package main

import (
	"flag"
	"log"

	"cinesocial/pkg/config"
	"cinesocial/pkg/database"
	"cinesocial/pkg/models"
)

func main() {
	command := flag.String("command", "up", "migration command (up, status, down)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if db == nil {
		log.Fatalf("DB_DRIVER is %q, nothing to migrate", cfg.DBDriver)
	}
	defer database.Close(db)

	tables := models.All()

	switch *command {
	case "up":
		if err := db.AutoMigrate(tables...); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Printf("Migrated %d snapshot tables", len(tables))
	case "status":
		migrator := db.Migrator()
		for _, table := range tables {
			state := "missing"
			if migrator.HasTable(table) {
				state = "present"
			}
			log.Printf("%-24T %s", table, state)
		}
	case "down":
		for i := len(tables) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(tables[i]); err != nil {
				log.Fatalf("Failed to drop %T: %v", tables[i], err)
			}
		}
		log.Printf("Dropped %d snapshot tables", len(tables))
	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
