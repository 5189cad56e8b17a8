package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"nexus-asset-manager/internal/service"
)

type assistantQuery struct {
	Query string `json:"query"`
}

type assistantAnswer struct {
	Answer string `json:"answer"`
}

type ReportHandler struct {
	assets    service.AssetService
	assistant service.AssistantService
	now       func() time.Time
}

func NewReportHandler(assets service.AssetService, assistant service.AssistantService) *ReportHandler {
	return &ReportHandler{assets: assets, assistant: assistant, now: time.Now}
}

func (h *ReportHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.assets.RenewalAlerts(r.Context(), h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.assets.Summary(r.Context(), h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.assets.SubscriptionMetrics(r.Context(), h.now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *ReportHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req assistantQuery
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	answer, err := h.assistant.Ask(r.Context(), req.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assistantAnswer{Answer: answer})
}

func RegisterReportRoutes(router *mux.Router, assets service.AssetService, assistant service.AssistantService) {
	h := NewReportHandler(assets, assistant)
	router.HandleFunc("/api/alerts", h.Alerts).Methods(http.MethodGet)
	router.HandleFunc("/api/reports/summary", h.Summary).Methods(http.MethodGet)
	router.HandleFunc("/api/reports/subscriptions", h.Subscriptions).Methods(http.MethodGet)
	router.HandleFunc("/api/assistant/query", h.Ask).Methods(http.MethodPost)
}
