package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/phamduyan/tagdex/internal/platform/request"
	"github.com/phamduyan/tagdex/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the tag endpoints.
//
// # Endpoints
//   - GET    /        : Lists all tags, sorted ascending by name.
//   - POST   /        : Creates a tag from a display name.
//   - GET    /{slug}  : Fetches a single tag.
//   - DELETE /{slug}  : Removes a tag.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listTags)
	router.Post("/", handler.createTag)
	router.Get("/{slug}", handler.getTagBySlug)
	router.Delete("/{slug}", handler.deleteTag)

	return router
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

// createTagRequest is the POST / body.
type createTagRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	payload := createTagRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateTag(request.Context(), payload.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) getTagBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	tag, err := handler.service.GetTagBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}

func (handler *Handler) deleteTag(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	if err := handler.service.DeleteTag(request.Context(), slug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
