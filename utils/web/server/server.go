package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// InitServer listens on port with the default mux and only returns on error.
//
// Example:
//
//	func main() {
//		err := server.InitServer(models.PagerConfig.PortPager)
//		if err != nil {
//			slog.Error("error initializing server", "err", err)
//		}
//	}
func InitServer(port int) error {
	addr := ":" + strconv.Itoa(port)
	slog.Info("Listening", "addr", addr)

	err := http.ListenAndServe(addr, nil)
	if err != nil {
		slog.Error("Error listening", "addr", addr, "err", err)
	}
	return err
}

// SendJsonResponse writes data as a JSON body with status 200.
func SendJsonResponse(writer http.ResponseWriter, data any) {
	SendJsonStatus(writer, http.StatusOK, data)
}

// SendJsonStatus writes data as a JSON body with the given status.
func SendJsonStatus(writer http.ResponseWriter, status int, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error converting data to JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(response)
}
