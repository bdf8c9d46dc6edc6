package handlers

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse        = Response{}
	DBError1Response  = Response{"DB Error 1"}
	DBError2Response  = Response{"DB Error 2"}
	NoSessionResponse = Response{"no active session"}
)
