package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/programarreza/TaskNestle-Server/utils"
)

// HealthCheckResponse represents health check status
type HealthCheckResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database,omitempty"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime,omitempty"`
}

var startTime = time.Now()

// Home answers the bare liveness probe.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("TaskNestle server is running"))
}

// HealthCheck reports process and database health.
func HealthCheck(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthCheckResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime).String(),
		}

		if client != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				response.Status = "unhealthy"
				response.Database = "disconnected"
				utils.RespondWithJSON(w, http.StatusServiceUnavailable, response)
				return
			}
			response.Database = "connected"
		}

		utils.RespondWithJSON(w, http.StatusOK, response)
	}
}
