// Command pairtool records a printer pairing for the agent to pick up.
// With DATABASE_URL set it writes to Postgres, otherwise to the JSON
// pairing file the agent reads.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"courier-print-service/internal/adapters/identity"
	"courier-print-service/internal/config"
	"courier-print-service/internal/domain"
	"courier-print-service/internal/platform/db"

	"github.com/joho/godotenv"
)

func main() {
	name := flag.String("name", "", "printer display name")
	address := flag.String("address", "", "printer address (Bluetooth MAC or host:port)")
	flag.Parse()

	if strings.TrimSpace(*address) == "" {
		log.Fatal("pairtool: -address is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	paired := domain.PrinterIdentity{Name: *name, Address: *address}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		if err := saveToDatabase(databaseURL, paired); err != nil {
			log.Fatal(err)
		}
		log.Printf("Pairing saved to database name=%q address=%s", paired.Name, paired.Address)
		return
	}

	path := config.Get("PAIRING_FILE", "data/printer_pairing.json")
	if err := saveToFile(path, paired); err != nil {
		log.Fatal(err)
	}
	log.Printf("Pairing saved path=%s name=%q address=%s", path, paired.Name, paired.Address)
}

func saveToDatabase(databaseURL string, paired domain.PrinterIdentity) error {
	conn, err := db.Open(databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := identity.InitSchema(conn); err != nil {
		return err
	}
	return identity.SavePairing(context.Background(), conn, paired)
}

func saveToFile(path string, paired domain.PrinterIdentity) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(map[string]string{
		"name":    paired.Name,
		"address": paired.Address,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
