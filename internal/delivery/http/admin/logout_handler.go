package admin_http

import (
	"net/http"

	"blog-post-service/internal/auth"
	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
)

type LogoutHandler struct {
	cookieName string
	log        *logger.Logger
}

func NewLogoutHandler(cookieName string, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{cookieName: cookieName, log: log}
}

type logoutResponse struct {
	Ok bool `json:"ok"`
}

// Handle clears the session cookie without inspecting its contents.
func (h *LogoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.cookieName)
	response.JSON(w, http.StatusOK, logoutResponse{Ok: true})
}
