package payments

type CreateCardRequest struct {
	HolderName string `json:"holder_name" validate:"required,min=2,max=100"`
	Number     string `json:"number" validate:"required,credit_card"`
	ExpiryDate string `json:"expiry_date" validate:"required,len=5"` // MM/YY
	CVC        string `json:"cvc" validate:"required,min=3,max=4,numeric"`
}
