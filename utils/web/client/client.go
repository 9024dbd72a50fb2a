package client

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DoRequest sends an HTTP request to http://ip:port/query with an optional JSON body.
// A non-200 status is returned as an error together with the response, so the caller can read its body.
//
// Parameters:
//   - port: server port
//   - ip: server IP or host name
//   - method: HTTP method
//   - query: path of the URL, without the leading slash
//   - bodies: optional request body
//
// Example:
//
//	func main() {
//		response, err := client.DoRequest(8005, "127.0.0.1", "POST", "pager/simulate", body)
//		if err != nil {
//			slog.Error("Request failed", "err", err)
//			return
//		}
//		defer response.Body.Close()
//	}
func DoRequest(port int, ip string, method string, query string, bodies ...[]byte) (*http.Response, error) {
	url := fmt.Sprintf("http://%s:%d/%s", ip, port, query)

	req, err := http.NewRequest(method, url, ifBody(bodies...))
	if err != nil {
		slog.Error("Error creating request", "ip", ip, "port", port, "err", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request to ip: %s port: %d: %w", ip, port, err)
	}

	if response.StatusCode != http.StatusOK {
		return response, fmt.Errorf("status error: %d %s", response.StatusCode, http.StatusText(response.StatusCode))
	}
	return response, nil
}

func ifBody(bodies ...[]byte) io.Reader {
	if len(bodies) == 0 {
		return nil
	}
	return bytes.NewReader(bodies[0])
}
