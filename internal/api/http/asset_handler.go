package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/service"
)

type AssetHandler struct {
	assets service.AssetService
}

func NewAssetHandler(assets service.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assets.ListAssets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assets.GetAsset(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// Save inserts the asset or replaces the record with the same id.
func (h *AssetHandler) Save(w http.ResponseWriter, r *http.Request) {
	var asset domain.Asset
	if err := decodeJSON(r, &asset); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.assets.SaveAsset(r.Context(), &asset); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assets.DeleteAsset(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Resolve looks a scanned or typed code up by id, then serial number.
func (h *AssetHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assets.ResolveCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func RegisterAssetRoutes(router *mux.Router, assets service.AssetService) {
	h := NewAssetHandler(assets)
	router.HandleFunc("/api/assets", h.List).Methods(http.MethodGet)
	router.HandleFunc("/api/assets", h.Save).Methods(http.MethodPost)
	router.HandleFunc("/api/assets/{id}", h.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/assets/{id}", h.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/api/scan", h.Resolve).Methods(http.MethodGet)
}
