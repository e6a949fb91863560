package handler

import (
	"net/http"

	model "agro-trade/internal/models"
	"agro-trade/services/auction/helpers"
	"agro-trade/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateCrop(cropName string, quantity, minPrice float64, location, farmerID, farmerName string) (model.Crop, error)
	PlaceBid(cropID string, amount float64, traderID, traderName string) (model.Bid, model.Crop, error)
	CloseAuction(cropID, farmerID string) error
	RecordPayment(cropID, traderID, paymentID string) error
	GetAllCrops() ([]model.Crop, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// GetAllCropsHandler handles GET /crops
func (h *AuctionHandler) GetAllCropsHandler(c *gin.Context) {
	crops, err := h.service.GetAllCrops()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("GetAllCropsHandler: failed to load crops", map[string]any{
			"handler": "GetAllCropsHandler",
			"error":   err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"crops": crops})
	helpers.LogSuccess("GetAllCropsHandler", "crops retrieved successfully", map[string]any{
		"count": len(crops),
	})
}

// CreateCropHandler handles POST /crops
func (h *AuctionHandler) CreateCropHandler(c *gin.Context) {
	var req helpers.CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCropHandler", err)
		return
	}

	crop, err := h.service.CreateCrop(req.CropName, req.Quantity, req.MinPrice, req.Location, req.FarmerID, req.FarmerName)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateCropHandler: failed to create crop", map[string]any{
			"handler":   "CreateCropHandler",
			"crop_name": req.CropName,
			"farmer_id": req.FarmerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"crop": crop})
	helpers.LogSuccess("CreateCropHandler", "crop listed successfully", map[string]any{
		"crop_id":   crop.CropID,
		"crop_name": crop.CropName,
		"farmer_id": crop.FarmerID,
		"min_price": crop.MinPrice,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, crop, err := h.service.PlaceBid(req.CropID, req.BidAmount, req.TraderID, req.TraderName)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"crop_id":   req.CropID,
			"trader_id": req.TraderID,
			"amount":    req.BidAmount,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"bid": bid, "crop": crop})
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"crop_id":   crop.CropID,
		"trader_id": bid.TraderID,
		"amount":    bid.Amount,
	})
}

// CloseAuctionHandler handles POST /crops/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	var req helpers.CloseAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseAuctionHandler", err)
		return
	}

	if err := h.service.CloseAuction(req.CropID, req.FarmerID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CloseAuctionHandler: failed to close auction", map[string]any{
			"handler":   "CloseAuctionHandler",
			"crop_id":   req.CropID,
			"farmer_id": req.FarmerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, nil)
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"crop_id":   req.CropID,
		"farmer_id": req.FarmerID,
	})
}

// RecordPaymentHandler handles POST /payments
func (h *AuctionHandler) RecordPaymentHandler(c *gin.Context) {
	var req helpers.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordPaymentHandler", err)
		return
	}

	if err := h.service.RecordPayment(req.CropID, req.TraderID, req.PaymentID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("RecordPaymentHandler: failed to record payment", map[string]any{
			"handler":    "RecordPaymentHandler",
			"crop_id":    req.CropID,
			"trader_id":  req.TraderID,
			"payment_id": req.PaymentID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, nil)
	helpers.LogSuccess("RecordPaymentHandler", "payment recorded successfully", map[string]any{
		"crop_id":    req.CropID,
		"trader_id":  req.TraderID,
		"payment_id": req.PaymentID,
	})
}
