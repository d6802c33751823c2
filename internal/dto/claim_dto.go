package dto

type SubmitClaimRequest struct {
	Message string `json:"message"`
}

type ReviewClaimRequest struct {
	Decision string `json:"decision"` // approve | reject
}
