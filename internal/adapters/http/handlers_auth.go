package web

import (
	"net/http"

	"usra/internal/adapters/http/middleware"
	"usra/internal/application/orchestrators"
)

// handleSignin handles GET and POST /signin.
func handleSignin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			redirectToOwnProfile(w, r)
			return
		}
		renderTemplate(w, r, "signin.html", map[string]any{})
	case http.MethodPost:
		handleSigninPost(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func handleSigninPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, orchestrators.LoginDeps{AccountStore: stores.AccountStore})
	if err != nil {
		renderTemplate(w, r, "signin.html", map[string]any{
			"Error": err.Error(),
			"Email": r.FormValue("email"),
		})
		return
	}

	token, err := sessions.Create(result.AccountID, result.Email, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}

	target := "/"
	if rec, err := stores.SchoolStore.GetByAccountID(r.Context(), result.AccountID); err == nil {
		target = "/profile/" + rec.ID
	}
	setSessionAndRedirect(w, r, token, target)
}

// handleSignout handles POST /signout.
func handleSignout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if cookie, err := r.Cookie("usra_session"); err == nil && cookie.Value != "" {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// setSessionAndRedirect installs the session cookie and redirects.
func setSessionAndRedirect(w http.ResponseWriter, r *http.Request, token, target string) {
	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// redirectToOwnProfile sends a signed-in user to their school profile, or home
// when no school is registered for the account.
func redirectToOwnProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	if rec, err := stores.SchoolStore.GetByAccountID(r.Context(), sess.AccountID); err == nil {
		http.Redirect(w, r, "/profile/"+rec.ID, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
