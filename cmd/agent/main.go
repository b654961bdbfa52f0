package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"courier-print-service/internal/adapters/identity"
	"courier-print-service/internal/adapters/notify"
	"courier-print-service/internal/adapters/qr"
	"courier-print-service/internal/adapters/transport"
	"courier-print-service/internal/api"
	"courier-print-service/internal/config"
	"courier-print-service/internal/platform/db"
	"courier-print-service/internal/ports"
	"courier-print-service/internal/services"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (pairing store, printer transport, QR API)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	transportKind := config.Get("TRANSPORT", "serial")
	trackingBase := config.Get("TRACKING_BASE_URL", services.DefaultTrackingBaseURL)

	store, cleanup, err := newIdentityStore()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	tp, err := newTransport(store, transportKind)
	if err != nil {
		log.Fatal(err)
	}
	defer tp.Close()

	// QR providers are optional: without the remote API the resolver still
	// serves the deterministic fallback URL.
	var thermal ports.ThermalQRProvider
	var generic ports.PackageQRProvider
	if base := os.Getenv("QR_API_BASE_URL"); strings.TrimSpace(base) != "" {
		client, err := qr.NewClient(base, os.Getenv("QR_API_KEY"))
		if err != nil {
			log.Fatal(err)
		}
		thermal, generic = client, client
	} else {
		log.Println("QR_API_BASE_URL not set; QR payloads use the deterministic fallback")
	}

	session := services.NewPrinterSession(store, tp, services.DefaultSessionConfig())
	resolver := services.NewQRPayloadResolver(thermal, generic, trackingBase)
	svc := services.NewPrintService(session, resolver, notify.LogNotifier{}, time.Now)

	router := api.NewRouter(svc, session)

	// The write timeout leaves room for a full reconnect cycle plus a slow
	// physical print.
	log.Printf("Agent listening addr=:%s transport=%s", port, transportKind)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newIdentityStore() (ports.IdentityStore, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return identity.NewSQLIdentityStore(conn), func() { conn.Close() }, nil
	}

	path := config.Get("PAIRING_FILE", "data/printer_pairing.json")
	return identity.NewFileIdentityStore(path), func() {}, nil
}

// newTransport binds the configured transport to the paired printer. An
// unpaired agent still starts; prints report NO_PRINTER_CONFIGURED until a
// pairing appears and the agent is restarted.
func newTransport(store ports.IdentityStore, kind string) (ports.Transport, error) {
	paired, err := store.Load(context.Background())
	if err != nil && !errors.Is(err, ports.ErrNoPairing) {
		return nil, err
	}

	var address string
	switch kind {
	case "serial":
		// The device node bound to the paired printer's address.
		address = config.Get("SERIAL_DEVICE", "/dev/rfcomm0")
	case "tcp":
		address = config.Get("PRINTER_ADDRESS", paired.Address)
	}

	if !paired.Configured() {
		log.Println("No printer paired yet; using a null transport")
		return transport.NewFromConfig("none", "")
	}

	log.Printf("Paired printer name=%q address=%s", paired.Name, paired.Address)
	return transport.NewFromConfig(kind, address)
}
