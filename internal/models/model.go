package models

import "time"

// CropStatus is the auction lifecycle state of a crop listing.
// The transition is one-way: active -> closed.
type CropStatus string

const (
	StatusActive CropStatus = "active"
	StatusClosed CropStatus = "closed"
)

// Trader identifies the trader behind the most recently accepted bid.
type Trader struct {
	TraderID   string `json:"traderId"`
	TraderName string `json:"traderName"`
}

// Payment records a settlement against a crop's winning bid.
type Payment struct {
	TraderID  string    `json:"traderId"`
	PaymentID string    `json:"paymentId"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Bid is one trader's offer against a crop's current price.
// Bids are immutable once appended to a crop.
type Bid struct {
	BidID      string    `json:"bidId"`
	TraderID   string    `json:"traderId"`
	TraderName string    `json:"traderName"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Crop is one auction listing for a quantity of produce.
type Crop struct {
	CropID        string     `json:"cropId"`
	CropName      string     `json:"cropName"`
	Quantity      float64    `json:"quantity"`
	MinPrice      float64    `json:"minPrice"`
	CurrentPrice  float64    `json:"currentPrice"`
	Location      string     `json:"location"`
	FarmerID      string     `json:"farmerId"`
	FarmerName    string     `json:"farmerName"`
	Status        CropStatus `json:"status"`
	Bids          []Bid      `json:"bids"`
	HighestBidder *Trader    `json:"highestBidder,omitempty"`
	Payment       *Payment   `json:"payment,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Clone returns a deep copy, so repository snapshots cannot alias
// the bids slice or the optional pointers of the stored crop.
func (c Crop) Clone() Crop {
	out := c
	if c.Bids != nil {
		out.Bids = append([]Bid(nil), c.Bids...)
	}
	if c.HighestBidder != nil {
		hb := *c.HighestBidder
		out.HighestBidder = &hb
	}
	if c.Payment != nil {
		p := *c.Payment
		out.Payment = &p
	}
	return out
}

// CloneCrops deep-copies a full crop collection.
func CloneCrops(crops []Crop) []Crop {
	out := make([]Crop, len(crops))
	for i, c := range crops {
		out[i] = c.Clone()
	}
	return out
}
