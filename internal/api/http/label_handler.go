package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/service"
)

type printLabelsRequest struct {
	IDs    []string            `json:"ids"`
	Format service.LabelFormat `json:"format,omitempty"`
}

type printLabelsResponse struct {
	Location string `json:"location"`
}

type LabelHandler struct {
	labels service.LabelService
}

func NewLabelHandler(labels service.LabelService) *LabelHandler {
	return &LabelHandler{labels: labels}
}

// Print renders a sheet for the ids in request order. ?format= overrides the body.
func (h *LabelHandler) Print(w http.ResponseWriter, r *http.Request) {
	var req printLabelsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if f := r.URL.Query().Get("format"); f != "" {
		req.Format = service.LabelFormat(f)
	}
	location, err := h.labels.PrintLabels(r.Context(), req.IDs, req.Format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, printLabelsResponse{Location: location})
}

func (h *LabelHandler) Single(w http.ResponseWriter, r *http.Request) {
	page, err := h.labels.SingleLabel(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

func RegisterLabelRoutes(router *mux.Router, labels service.LabelService) {
	h := NewLabelHandler(labels)
	router.HandleFunc("/api/labels", h.Print).Methods(http.MethodPost)
	router.HandleFunc("/api/assets/{id}/label", h.Single).Methods(http.MethodGet)
}
