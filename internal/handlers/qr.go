package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/zenith-academy/intake/internal/db"
	"github.com/zenith-academy/intake/internal/models"
)

// GET /qr/{code}.png serves the QR for a client's ZEN- code, scanned at the front
// desk to pull up the record.
func QR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.NotFound(w, r)
		return
	}
	// ensure code exists
	var client models.Client
	if err := db.Conn().Where("code = ?", code).First(&client).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	// Encode a URL so scanning opens the record directly
	url := fmt.Sprintf("http://%s/GetClientsById/%d", r.Host, client.ID)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
