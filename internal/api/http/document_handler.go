package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/service"
)

type draftRequest struct {
	Instruction string `json:"instruction"`
}

type DocumentHandler struct {
	documents      service.DocumentService
	maxUploadBytes int64
}

func NewDocumentHandler(documents service.DocumentService, maxUploadBytes int64) *DocumentHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &DocumentHandler{documents: documents, maxUploadBytes: maxUploadBytes}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.ListDocuments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []domain.DocumentTemplate{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.CreateDocument(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.GetDocument(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var update service.DocumentUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := h.documents.UpdateDocument(r.Context(), mux.Vars(r)["id"], update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documents.DeleteDocument(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import reads the multipart "file" field. Without an id in the path a new
// document is created from it.
func (h *DocumentHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file exceeds upload limit"})
			return
		}
		writeError(w, r, &domain.ValidationError{Field: "file", Reason: err.Error()})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, &domain.ValidationError{Field: "file", Reason: "is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	targetID := mux.Vars(r)["id"]
	doc, err := h.documents.ImportFile(r.Context(), targetID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if targetID == "" {
		status = http.StatusCreated
	}
	writeJSON(w, status, doc)
}

func (h *DocumentHandler) Draft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	doc, err := h.documents.DraftDocument(r.Context(), mux.Vars(r)["id"], req.Instruction)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Print(w http.ResponseWriter, r *http.Request) {
	page, err := h.documents.PrintDocument(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeHTML(w, page)
}

func RegisterDocumentRoutes(router *mux.Router, documents service.DocumentService, maxUploadBytes int64) {
	h := NewDocumentHandler(documents, maxUploadBytes)
	router.HandleFunc("/api/documents", h.List).Methods(http.MethodGet)
	router.HandleFunc("/api/documents", h.Create).Methods(http.MethodPost)
	router.HandleFunc("/api/documents/import", h.Import).Methods(http.MethodPost)
	router.HandleFunc("/api/documents/{id}", h.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/documents/{id}", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/api/documents/{id}", h.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/api/documents/{id}/import", h.Import).Methods(http.MethodPost)
	router.HandleFunc("/api/documents/{id}/draft", h.Draft).Methods(http.MethodPost)
	router.HandleFunc("/api/documents/{id}/print", h.Print).Methods(http.MethodGet)
}
