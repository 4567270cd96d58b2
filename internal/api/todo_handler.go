package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todolist-api/internal/api/shared"
	"github.com/phrazzld/todolist-api/internal/platform/logger"
	"github.com/phrazzld/todolist-api/internal/service"
)

// Path parameter names.
const (
	listIDParam  = "listId"
	entryIDParam = "entryId"
)

// TodoHandler handles list and entry HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler.
// If logger is nil, a default logger is used.
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if todoService == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("todoService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// RegisterRoutes mounts the list and entry endpoints on r.
func (h *TodoHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.ListLists)
		r.Post("/", h.CreateList)
		r.Get("/{listId}", h.ListEntries)
		r.Post("/{listId}", h.CreateEntry)
		r.Delete("/{listId}", h.DeleteList)
		r.Delete("/{entryId}/{listId}", h.DeleteEntry)
	})
}

func (h *TodoHandler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), h.logger)
}

// ListLists handles GET /api requests
func (h *TodoHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.todoService.ListAllLists(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve lists")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, listsToResponse(lists))
}

// ListEntries handles GET /api/{listId} requests
func (h *TodoHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	ids, ok := handlePathIDs(w, r, log, listIDParam)
	if !ok {
		return
	}

	entries, err := h.todoService.ListEntries(r.Context(), ids[0])
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve entries")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// CreateList handles POST /api requests
func (h *TodoHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	var req CreateListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid create list payload", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	list, err := h.todoService.CreateList(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create list")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, listToResponse(list))
}

// CreateEntry handles POST /api/{listId} requests.
// A created entry is acknowledged with 201 and no body.
func (h *TodoHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	ids, ok := handlePathIDs(w, r, log, listIDParam)
	if !ok {
		return
	}

	var req CreateEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid create entry payload", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	// The description is validated by the service after the list lookup, so
	// a missing list answers 404 even when the payload is also invalid.
	if _, err := h.todoService.CreateEntry(r.Context(), ids[0], req.Description); err != nil {
		HandleAPIError(w, r, err, "Failed to create entry")
		return
	}

	shared.RespondWithStatus(w, http.StatusCreated)
}

// DeleteList handles DELETE /api/{listId} requests
func (h *TodoHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	ids, ok := handlePathIDs(w, r, log, listIDParam)
	if !ok {
		return
	}

	if err := h.todoService.DeleteList(r.Context(), ids[0]); err != nil {
		HandleAPIError(w, r, err, "Failed to delete list")
		return
	}

	shared.RespondWithStatus(w, http.StatusOK)
}

// DeleteEntry handles DELETE /api/{entryId}/{listId} requests
func (h *TodoHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	ids, ok := handlePathIDs(w, r, log, entryIDParam, listIDParam)
	if !ok {
		return
	}
	entryID, listID := ids[0], ids[1]

	if err := h.todoService.DeleteEntry(r.Context(), listID, entryID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete entry")
		return
	}

	shared.RespondWithStatus(w, http.StatusOK)
}
