package integrationtests

import (
	"net/http"
	"testing"

	"agro-trade/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func createCrop(t *testing.T, router *gin.Engine, req helpers.CreateCropRequest) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/crops", req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, true, resp["success"])

	crop := resp["crop"].(map[string]any)
	return crop["cropId"].(string)
}

// The full marketplace lifecycle against the HTTP surface: list a crop,
// reject a low bid with the current price in the message, accept a higher
// bid, refuse closing by a non-owner, close by the owner, refuse further
// bids, record the payment.
func TestAuctionLifecycle(t *testing.T) {
	router := SetupTestRouter()

	cropID := createCrop(t, router, helpers.CreateCropRequest{
		CropName: "Wheat", Quantity: 100, MinPrice: 50, Location: "Nashik", FarmerID: "f1", FarmerName: "Ravi",
	})

	// Bid below the floor is rejected and names the current price
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CropID: cropID, BidAmount: 40, TraderID: "t1", TraderName: "Arjun"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, false, resp["success"])
	require.Contains(t, resp["message"], "current price ₹50")

	// Higher bid is accepted and ratchets the price
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CropID: cropID, BidAmount: 60, TraderID: "t1", TraderName: "Arjun"})
	require.Equal(t, http.StatusCreated, w.Code)
	crop := resp["crop"].(map[string]any)
	require.Equal(t, 60.0, crop["currentPrice"])
	require.Equal(t, "t1", crop["highestBidder"].(map[string]any)["traderId"])

	// Equal bid is rejected (strict > required)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CropID: cropID, BidAmount: 60, TraderID: "t2", TraderName: "Meera"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Non-owner close looks like a missing crop
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/crops/close",
		helpers.CloseAuctionRequest{CropID: cropID, FarmerID: "f2"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Owner close succeeds
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/crops/close",
		helpers.CloseAuctionRequest{CropID: cropID, FarmerID: "f1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])

	// Closing again is silently fine
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/crops/close",
		helpers.CloseAuctionRequest{CropID: cropID, FarmerID: "f1"})
	require.Equal(t, http.StatusOK, w.Code)

	// No more bids once closed
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CropID: cropID, BidAmount: 100, TraderID: "t2", TraderName: "Meera"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Payment attaches to the crop
	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/payments",
		helpers.RecordPaymentRequest{CropID: cropID, TraderID: "t1", PaymentID: "pay-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, resp["success"])

	// Final state visible through GetAll
	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/crops", nil)
	require.Equal(t, http.StatusOK, w.Code)
	crops := resp["crops"].([]any)
	require.Len(t, crops, 1)
	final := crops[0].(map[string]any)
	require.Equal(t, "closed", final["status"])
	require.Equal(t, 60.0, final["currentPrice"])
	require.Equal(t, "pay-1", final["payment"].(map[string]any)["paymentId"])
	require.Len(t, final["bids"], 1)
}

// The same semantics must hold when the ledger runs over the flat-file
// backend instead of memory.
func TestAuctionLifecycle_FileBackend(t *testing.T) {
	router := SetupFileBackedRouter(t)

	cropID := createCrop(t, router, helpers.CreateCropRequest{
		CropName: "Rice", Quantity: 40, MinPrice: 80, Location: "Thanjavur", FarmerID: "f1", FarmerName: "Ravi",
	})

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids",
		helpers.PlaceBidRequest{CropID: cropID, BidAmount: 90, TraderID: "t1", TraderName: "Arjun"})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/crops/close",
		helpers.CloseAuctionRequest{CropID: cropID, FarmerID: "f1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/crops", nil)
	require.Equal(t, http.StatusOK, w.Code)
	crops := resp["crops"].([]any)
	require.Len(t, crops, 1)
	final := crops[0].(map[string]any)
	require.Equal(t, "closed", final["status"])
	require.Equal(t, 90.0, final["currentPrice"])
}

func TestCreateCropValidation(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "valid_crop",
			request: helpers.CreateCropRequest{
				CropName: "Wheat", Quantity: 100, MinPrice: 50, Location: "Nashik", FarmerID: "f1",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid_json",
			request:    "{cropName: 'missing quotes'}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing_farmer_id",
			request: helpers.CreateCropRequest{
				CropName: "Wheat", Quantity: 100, MinPrice: 50, Location: "Nashik",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "zero_quantity",
			request: helpers.CreateCropRequest{
				CropName: "Wheat", Quantity: 0, MinPrice: 50, Location: "Nashik", FarmerID: "f1",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/crops", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				crop := resp["crop"].(map[string]any)
				// Omitted farmer name falls back to the placeholder
				require.Equal(t, "Unknown Farmer", crop["farmerName"])
				return
			}

			// Nothing may be persisted on a rejected create
			listResp, _ := ExecuteRequestAndParse(t, router, http.MethodGet, "/crops", nil)
			require.Empty(t, listResp["crops"])
		})
	}
}

func TestRecordPaymentOverwrite(t *testing.T) {
	router := SetupTestRouter()

	cropID := createCrop(t, router, helpers.CreateCropRequest{
		CropName: "Wheat", Quantity: 100, MinPrice: 50, Location: "Nashik", FarmerID: "f1",
	})

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/payments",
		helpers.RecordPaymentRequest{CropID: cropID, TraderID: "t1", PaymentID: "pay-1"})
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/payments",
		helpers.RecordPaymentRequest{CropID: cropID, TraderID: "t2", PaymentID: "pay-2"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, _ := ExecuteRequestAndParse(t, router, http.MethodGet, "/crops", nil)
	crops := resp["crops"].([]any)
	payment := crops[0].(map[string]any)["payment"].(map[string]any)
	require.Equal(t, "pay-2", payment["paymentId"])
	require.Equal(t, "t2", payment["traderId"])
}

func TestRecordPaymentUnknownCrop(t *testing.T) {
	router := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/payments",
		helpers.RecordPaymentRequest{CropID: "missing", TraderID: "t1", PaymentID: "pay-1"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, resp["success"])
}
