package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"usra/internal/adapters/blobstore"
	"usra/internal/adapters/email"
	"usra/internal/adapters/http/middleware"
	"usra/internal/adapters/identity"
	accountStore "usra/internal/adapters/storage/account"
	playerStore "usra/internal/adapters/storage/player"
	schoolStore "usra/internal/adapters/storage/school"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore accountStore.Store
	SchoolStore  schoolStore.Store
	PlayerStore  playerStore.Store
}

// loadCSRFKey reads the CSRF secret from USRA_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("USRA_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("USRA_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("USRA_ENV") == "production" {
		log.Fatal("USRA_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set USRA_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global identity service (set by NewMux)
var identitySvc *identity.Service

// Global blob store (set by SetBlobStore)
var blobs blobstore.Store

// Global wizard draft store
var wizards = newDraftStore(2 * time.Hour)

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// SetBlobStore sets the global object store for uploads.
func SetBlobStore(store blobstore.Store) {
	blobs = store
}

// uploadsDir, when set, is served at /uploads/ for filesystem-backed blobs.
var uploadsDir string

// SetUploadsDir exposes a local uploads directory over HTTP. Only needed with
// the filesystem blob store; hosted object storage serves its own URLs.
func SetUploadsDir(dir string) {
	uploadsDir = dir
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	identitySvc = identity.NewService(s.AccountStore, sessions)
	middleware.SecureCookies = os.Getenv("USRA_ENV") == "production"
	if blobs == nil {
		blobs = blobstore.NewMemoryStore()
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	if uploadsDir != "" {
		mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
