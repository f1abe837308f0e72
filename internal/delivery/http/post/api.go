package post_http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"blog-post-service/internal/custom_errors"
	"blog-post-service/internal/delivery/http/response"
	"blog-post-service/internal/logger"
	post_service "blog-post-service/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService post_service.Service
	log         *logger.Logger

	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	likePostHandler   *LikePostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
	statsHandler      *StatsHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService:       postService,
		log:               log,
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		likePostHandler:   NewLikePostHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
		statsHandler:      NewStatsHandler(postService, log),
	}
}

// Routes wires the post endpoints. requireAdmin gates the mutating and
// aggregate operations; list and slug reads are public.
func (s *PostHTTPService) Routes(requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.listPostsHandler.Handle)
	r.Get("/{slug}", s.getPostHandler.Handle)
	r.Patch("/{slug}", s.likePostHandler.Handle)

	r.Group(func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/stats", s.statsHandler.Handle)
		r.Post("/", s.createPostHandler.Handle)
		r.Put("/", s.updatePostHandler.Handle)
		r.Delete("/", s.deletePostHandler.Handle)
	})

	return r
}

// writeServiceError maps domain errors onto the HTTP contract.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostValidation):
		response.Error(w, http.StatusBadRequest, "Title is required")
	case errors.Is(err, custom_errors.ErrInvalidSlug):
		response.Error(w, http.StatusBadRequest, "Invalid slug generated")
	case errors.Is(err, custom_errors.ErrSlugTaken):
		response.Error(w, http.StatusBadRequest, "Slug already exists")
	case errors.Is(err, custom_errors.ErrPostNotFound):
		response.Error(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, custom_errors.ErrDatabaseAuthFailed):
		response.Error(w, http.StatusInternalServerError, custom_errors.ErrDatabaseAuthFailed.Error())
	case errors.Is(err, custom_errors.ErrDatabaseUnavailable):
		response.Error(w, http.StatusInternalServerError, custom_errors.ErrDatabaseUnavailable.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
