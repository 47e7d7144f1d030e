package dto

type CommentFileDTO struct {
	OriginalName string `json:"originalName"`
	Path         string `json:"path"`
	MimeType     string `json:"mimeType"`
}

type CommentResponseDTO struct {
	ID         int64           `json:"id"`
	Text       string          `json:"text"`
	AuthorType string          `json:"authorType" example:"Admin"`
	AuthorName string          `json:"authorName"`
	File       *CommentFileDTO `json:"file,omitempty"`
	CreatedAt  string          `json:"createdAt" example:"2024-12-09T16:09:57+03:00"`
}
