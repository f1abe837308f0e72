package admin_http

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-post-service/internal/auth"
	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	admin_service "blog-post-service/internal/service/admin"
)

type SigninHandler struct {
	adminService admin_service.Service
	cookieName   string
	secure       bool
	log          *logger.Logger
}

func NewSigninHandler(adminService admin_service.Service, cookieName string, secure bool, log *logger.Logger) *SigninHandler {
	return &SigninHandler{
		adminService: adminService,
		cookieName:   cookieName,
		secure:       secure,
		log:          log,
	}
}

type signinRequest struct {
	Key string `json:"key"`
}

type signinResponse struct {
	Message string `json:"message"`
}

func (h *SigninHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	token, err := h.adminService.SignIn(req.Key)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrAdminKeyInvalid):
			response.Error(w, http.StatusUnauthorized, "Invalid key")
		case errors.Is(err, custom_errors.ErrMissingConfig):
			response.Error(w, http.StatusInternalServerError, "Server misconfigured")
		default:
			response.Error(w, http.StatusInternalServerError, "Sign-in failed")
		}
		return
	}

	auth.SetSessionCookie(w, h.cookieName, token, h.secure)
	response.JSON(w, http.StatusOK, signinResponse{Message: "Sign-in successful"})
}
