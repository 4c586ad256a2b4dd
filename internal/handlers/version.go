package handlers

import (
	"net/http"

	"github.com/QueryGate/pdp-go/internal/httpx"
	"github.com/QueryGate/pdp-go/internal/version"
)

func VersionHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, version.Get())
}
