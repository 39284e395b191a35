package dto

type ExtractResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	FileType string `json:"file_type"`
	Filename string `json:"filename"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSizeMB    int      `json:"max_file_size_mb"`
}

type FormatsResponse struct {
	Success       bool     `json:"success"`
	Formats       []string `json:"formats"`
	MaxFileSizeMB int      `json:"max_file_size_mb"`
}
