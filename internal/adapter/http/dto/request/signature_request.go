package request

// SignatureCreateRequest opens a signature request for a project.

type SignatureCreateRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
	SignerRole string `json:"signer_role" binding:"required"`
}

// SignRequest presents the one-time bearer token plus the signature payload.

type SignRequest struct {
	Token           string `json:"token" binding:"required"`
	SignatureBase64 string `json:"signature_base64"`
}
