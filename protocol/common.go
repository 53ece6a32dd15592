package protocol

type StringResponse struct {
	Code int    `json:"code"` // status code
	Data string `json:"data"`
}

type CommonResponse struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
}

var SuccessResponse = StringResponse{0, "success"}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type Version struct {
	Version string `json:"version"`
	Rules   string `json:"rules"`
}
