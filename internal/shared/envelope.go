package shared

// Envelope is the JSON body of every response of the fake BaaS server.
// Code is 0 on success and the HTTP status otherwise; Status is the name of
// the matching gRPC code.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Page is the data of a list response.
type Page[T any] struct {
	Total    int `json:"total"`
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
	List     []T `json:"list"`
}
