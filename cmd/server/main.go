package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"usra/internal/adapters/blobstore"
	emailPkg "usra/internal/adapters/email"
	web "usra/internal/adapters/http"
	"usra/internal/adapters/storage"
	accountStore "usra/internal/adapters/storage/account"
	playerStore "usra/internal/adapters/storage/player"
	schoolStore "usra/internal/adapters/storage/school"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Local development overrides; missing .env is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("USRA_DB_PATH", "usra.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	stores := &web.Stores{
		AccountStore: accountStore.NewSQLiteStore(db),
		SchoolStore:  schoolStore.NewSQLiteStore(db),
		PlayerStore:  playerStore.NewSQLiteStore(db),
	}

	// Object storage for badges and photos: Supabase when configured,
	// otherwise a local uploads directory.
	supabaseURL := os.Getenv("SUPABASE_PROJECT_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseURL != "" && supabaseKey != "" {
		web.SetBlobStore(blobstore.NewSupabaseStore(supabaseURL, supabaseKey))
		log.Println("Object storage configured (Supabase)")
	} else {
		uploadsDir := envOrDefault("USRA_UPLOADS_DIR", "uploads")
		web.SetBlobStore(blobstore.NewFSStore(uploadsDir, "/uploads"))
		web.SetUploadsDir(uploadsDir)
		log.Printf("Object storage configured (local directory %q — set SUPABASE_PROJECT_URL for hosted storage)", uploadsDir)
	}

	// Email delivery for registration confirmations
	resendKey := os.Getenv("USRA_RESEND_KEY")
	emailFrom := envOrDefault("USRA_EMAIL_FROM", "Uganda Schools Rugby <noreply@usrarugby.ug>")
	emailReply := envOrDefault("USRA_REPLY_TO", "info@usrarugby.ug")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("USRA_ENV") == "production" {
			log.Println("WARNING: USRA_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set USRA_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores)

	addr := envOrDefault("USRA_ADDR", ":8080")
	log.Printf("USRA %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("USRA_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
