package calculator

// ComputeRequest is the JSON body for POST /calculators/{id}.
type ComputeRequest struct {
	Values FieldValues `json:"values"`
}

// ComputeResponse is the JSON response for POST /calculators/{id}.
type ComputeResponse struct {
	Calculator string       `json:"calculator"`
	Title      string       `json:"title"`
	Results    ResultValues `json:"results"`
}

// MissingFieldsResponse is returned with 422 when required fields are blank.
type MissingFieldsResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
}

// Summary is one entry of GET /calculators.
type Summary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Fields int    `json:"fields"`
}
