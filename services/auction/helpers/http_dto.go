package helpers

// Request DTOs. Field names follow the marketplace API contract (camelCase
// JSON keys); gin's binding tags enforce the required/non-zero rules.
type CreateCropRequest struct {
	CropName   string  `json:"cropName" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
	MinPrice   float64 `json:"minPrice" binding:"required"`
	Location   string  `json:"location" binding:"required"`
	FarmerID   string  `json:"farmerId" binding:"required"`
	FarmerName string  `json:"farmerName"`
}

type PlaceBidRequest struct {
	CropID     string  `json:"cropId" binding:"required"`
	BidAmount  float64 `json:"bidAmount" binding:"required"`
	TraderID   string  `json:"traderId" binding:"required"`
	TraderName string  `json:"traderName"`
}

type CloseAuctionRequest struct {
	CropID   string `json:"cropId" binding:"required"`
	FarmerID string `json:"farmerId" binding:"required"`
}

type RecordPaymentRequest struct {
	CropID    string `json:"cropId" binding:"required"`
	TraderID  string `json:"traderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
}
