package api

// HTTPError is the error envelope returned by every handler.
// swagger:model api.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
