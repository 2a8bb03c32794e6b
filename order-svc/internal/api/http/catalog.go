package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"restaurant-pos/order-svc/internal/domain"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateItem(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListItems(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var item domain.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	item.ID = id
	if err := h.Catalog.UpdateItem(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteItem(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) uploadItemImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		badRequest(w, "File too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, "Error retrieving the file")
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		badRequest(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		h.writeError(w, r, err)
		return
	}

	filename := "item_" + strconv.Itoa(id) + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.writeError(w, r, err)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Catalog.UpdateItemImage(r.Context(), id, imageURL); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info("item image stored", zap.Int("item_id", id), zap.String("image_url", imageURL))
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) createAddOn(w http.ResponseWriter, r *http.Request) {
	var addon domain.AddOn
	if err := decodeJSON(r, &addon); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateAddOn(r.Context(), &addon); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addon)
}

func (h *Handler) getAddOns(w http.ResponseWriter, r *http.Request) {
	addons, err := h.Catalog.ListAddOns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addons)
}

func (h *Handler) updateAddOn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var addon domain.AddOn
	if err := decodeJSON(r, &addon); err != nil {
		h.writeError(w, r, err)
		return
	}
	addon.ID = id
	if err := h.Catalog.UpdateAddOn(r.Context(), &addon); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addon)
}

func (h *Handler) deleteAddOn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.DeleteAddOn(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if err := decodeJSON(r, &e); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateEmployee(r.Context(), &e); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) getEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Catalog.ListEmployees(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var t domain.DiningTable
	if err := decodeJSON(r, &t); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Catalog.CreateTable(r.Context(), &t); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Catalog.ListTables(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Catalog.TableQRCode(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
