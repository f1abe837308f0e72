package admin_service

import (
	"log/slog"
	"strings"
	"time"

	"blog-post-service/internal/auth"
	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/logger"
	"blog-post-service/internal/metrics"
)

type Service interface {
	SignIn(key string) (string, error)
}

type AdminService struct {
	adminKey  string
	jwtSecret []byte
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewAdminService(adminKey, jwtSecret string, log *logger.Logger, metrics metrics.Provider) *AdminService {
	return &AdminService{
		adminKey:  adminKey,
		jwtSecret: []byte(jwtSecret),
		log:       log,
		metrics:   metrics,
	}
}

// SignIn exchanges the shared admin key for a signed session token. The
// comparison is exact after trimming both sides; an empty configured key can
// never match and is reported as a configuration problem instead.
func (s *AdminService) SignIn(key string) (string, error) {
	adminKey := strings.TrimSpace(s.adminKey)
	if adminKey == "" || len(s.jwtSecret) == 0 {
		s.metrics.IncrementAdminSignins(false)
		s.log.Error("Admin sign-in misconfigured: admin key or signing secret is empty")
		return "", custom_errors.ErrMissingConfig
	}

	if strings.TrimSpace(key) != adminKey {
		s.metrics.IncrementAdminSignins(false)
		s.log.Warn("Admin sign-in rejected: key mismatch")
		return "", custom_errors.ErrAdminKeyInvalid
	}

	token, err := auth.IssueToken(s.jwtSecret, time.Now())
	if err != nil {
		s.metrics.IncrementAdminSignins(false)
		s.log.Error("Failed to issue admin token", slog.String("error", err.Error()))
		return "", err
	}

	s.metrics.IncrementAdminSignins(true)
	s.log.Info("Admin signed in")
	return token, nil
}
