package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthCheck reports liveness. The service keeps no state, so alive means
// ready.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
