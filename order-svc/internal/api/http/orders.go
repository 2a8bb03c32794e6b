package httpapi

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/order-svc/internal/domain"
)

type createOrderRequest struct {
	TableID    *int               `json:"table_id"`
	Items      []orderItemRequest `json:"items"`
	TotalPrice *decimal.Decimal   `json:"total_price"`
}

type orderItemRequest struct {
	ID             int              `json:"id"`
	Quantity       int              `json:"quantity"`
	Price          decimal.Decimal  `json:"price"`
	Observation    string           `json:"observation"`
	SelectedAddons []addOnSelection `json:"selectedAddons"`
}

type addOnSelection struct {
	ID    int             `json:"id"`
	Price decimal.Decimal `json:"price"`
}

func (req createOrderRequest) toNewOrder() domain.NewOrder {
	in := domain.NewOrder{
		TableID: req.TableID,
		Lines:   make([]domain.NewOrderLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		line := domain.NewOrderLine{
			ItemID:      item.ID,
			Quantity:    item.Quantity,
			Observation: item.Observation,
			UnitPrice:   item.Price,
		}
		for _, a := range item.SelectedAddons {
			line.AddOns = append(line.AddOns, domain.NewLineAddOn{AddOnID: a.ID, Price: a.Price})
		}
		in.Lines = append(in.Lines, line)
	}
	return in
}

type createOrderResponse struct {
	ID         int             `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), req.toNewOrder(), req.TotalPrice)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		ID:         order.ID,
		CreatedAt:  order.CreatedAt,
		TotalPrice: order.TotalPrice,
	})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), id, status); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Orders.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

func (h *Handler) getTableOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	orders, err := h.Orders.ListOpenForTable(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) closeTable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Orders.CloseTable(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
