package handlers

import (
	"net/http"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/web/server"
)

// HandshakeHandler answers with message, used to check the server is up.
//
// Example:
//
//	func main() {
//		http.HandleFunc("GET /", handlers.HandshakeHandler("Welcome"))
//	}
func HandshakeHandler(message string) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		server.SendJsonResponse(writer, message)
	}
}
