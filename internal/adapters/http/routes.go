package web

import "net/http"

// registerRoutes wires every page handler onto the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/leadership", handleLeadership)
	mux.HandleFunc("/workplan", handleWorkplan)
	mux.HandleFunc("/medical-fund", handleMedicalFund)
	mux.HandleFunc("/photos", handlePhotos)

	mux.HandleFunc("/registration", handleRegistration)
	mux.HandleFunc("/signin", handleSignin)
	mux.HandleFunc("/signout", handleSignout)

	mux.HandleFunc("/profile/{schoolID}", handleProfile)
	mux.HandleFunc("/player-registration/{schoolID}", handlePlayerRegistration)
}
