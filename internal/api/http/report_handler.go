package http

import (
	"net/http"
	"time"

	"rentez-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	stats, err := h.reportSvc.DashboardStats(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) SalesData(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	data, err := h.reportSvc.SalesData(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	products, err := h.reportSvc.TopProducts(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ReportHandler) TotalSales(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	total, err := h.reportSvc.TotalSales(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *ReportHandler) UserCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.reportSvc.UserCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"count": count})
}

func (h *ReportHandler) UserCountForMonth(w http.ResponseWriter, r *http.Request) {
	count, err := h.reportSvc.UserCountForMonth(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"count": count})
}

func (h *ReportHandler) ReturnedSalesCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.reportSvc.ReturnedSalesCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"count": count})
}

func (h *ReportHandler) RecentSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.reportSvc.RecentSales(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.reportSvc.Revenue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"revenue": revenue})
}

func (h *ReportHandler) TopPricedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.reportSvc.TopPricedProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ReportHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.reportSvc.RecentActivities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
