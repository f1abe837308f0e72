package admin_http

import (
	"github.com/go-chi/chi/v5"

	"blog-post-service/internal/logger"
	admin_service "blog-post-service/internal/service/admin"
)

type AdminHTTPService struct {
	adminService admin_service.Service
	log          *logger.Logger

	signinHandler *SigninHandler
	logoutHandler *LogoutHandler
}

// NewAdminHTTPService wires the sign-in/logout endpoints. secure controls the
// Secure cookie attribute and is true in production.
func NewAdminHTTPService(adminService admin_service.Service, cookieName string, secure bool, log *logger.Logger) *AdminHTTPService {
	return &AdminHTTPService{
		adminService:  adminService,
		log:           log,
		signinHandler: NewSigninHandler(adminService, cookieName, secure, log),
		logoutHandler: NewLogoutHandler(cookieName, log),
	}
}

func (s *AdminHTTPService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/signin", s.signinHandler.Handle)
	r.Post("/logout", s.logoutHandler.Handle)
	return r
}
