package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/car-showroom/model"
	utilsContext "github.com/muhammadheryan/car-showroom/utils/context"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	validatorx "github.com/muhammadheryan/car-showroom/utils/validator"
	"go.uber.org/zap"
)

func (s *RestHandler) setSessionCookie(w http.ResponseWriter, res *model.LoginResponse) {
	if s.Config.Auth.CookieName == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.Config.Auth.CookieName,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   s.Config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *RestHandler) clearSessionCookie(w http.ResponseWriter) {
	if s.Config.Auth.CookieName == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.Config.Auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// RegisterForm handler
// @Summary Register form
// @Tags Auth
// @Produce json
// @Success 200 {object} model.AuthForm
// @Router /register [get]
func (s *RestHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.UserApp.AuthForm("/register"))
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateForm(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// LoginForm handler
// @Summary Login form
// @Tags Auth
// @Produce json
// @Success 200 {object} model.AuthForm
// @Router /login [get]
func (s *RestHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.UserApp.AuthForm("/login"))
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateForm(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, res)
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Ends the current session and redirects to the landing page
// @Tags Auth
// @Security BearerAuth
// @Success 303
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID, ok := utilsContext.GetSessionID(ctx); ok {
		if err := s.UserApp.Logout(ctx, sessionID); err != nil {
			logger.Warn("[Logout] err userApp.Logout", zap.String("error", err.Error()))
		}
	}

	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// OAuthRedirect handler
// @Summary Start third-party login
// @Tags Auth
// @Param provider path string true "Provider name"
// @Success 302
// @Failure 400 {object} Response
// @Router /auth/{provider}/redirect [get]
func (s *RestHandler) OAuthRedirect(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.OAuthRedirect(r.Context(), mux.Vars(r)["provider"])
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, res.URL, http.StatusFound)
}

// OAuthCallback handler
// @Summary Finish third-party login
// @Tags Auth
// @Produce json
// @Param provider path string true "Provider name"
// @Param state query string true "State issued by the redirect"
// @Param code query string true "Authorization code"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} Response
// @Router /auth/{provider}/callback [get]
func (s *RestHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	res, err := s.UserApp.OAuthCallback(r.Context(), mux.Vars(r)["provider"], q.Get("state"), q.Get("code"))
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, res)
	writeSuccess(w, res)
}
