package dtos

type ApplicationRequest struct {
	Name        string `json:"name" binding:"required,max=191"`
	Email       string `json:"email" binding:"required,email,max=191"`
	Phone       string `json:"phone" binding:"required,max=50"`
	Country     string `json:"country" binding:"max=100"`
	City        string `json:"city" binding:"max=100"`
	LinkedinURL string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	CoverLetter string `json:"cover_letter" binding:"max=10000"`
	ResumeID    *uint  `json:"resume_id"`
}

type CVParseRequest struct {
	// Raw resume text. File upload and text extraction happen upstream.
	Text string `json:"text" binding:"required"`
}
