package middleware

import "net/http"

// statusWriter records the status code and bytes written so the request
// logger can report them.
type statusWriter struct {
	http.ResponseWriter

	status        int
	bytesWritten  int
	headerWritten bool
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

func (w *statusWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}

	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

func (w *statusWriter) Status() int {
	return w.status
}

func (w *statusWriter) BytesWritten() int {
	return w.bytesWritten
}
