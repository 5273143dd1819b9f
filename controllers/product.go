// controllers/product.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariantInput struct {
	Combination []models.VariantPair `json:"combination" binding:"required,min=1"`
	Price       float64              `json:"price" binding:"min=0"`
	Stock       int                  `json:"stock" binding:"min=0"`
	SKU         string               `json:"sku"`
	Code        string               `json:"code"`
}

type CreateProductInput struct {
	ProductName   string         `json:"productName" binding:"required"`
	Description   string         `json:"description"`
	HasVariations bool           `json:"hasVariations"`
	Price         float64        `json:"price" binding:"min=0"`
	Stock         int            `json:"stock" binding:"min=0"`
	Variants      []VariantInput `json:"variants"`
}

type UpdateProductInput struct {
	ProductName   *string         `json:"productName"`
	Description   *string         `json:"description"`
	HasVariations *bool           `json:"hasVariations"`
	Price         *float64        `json:"price" binding:"omitempty,min=0"`
	Stock         *int            `json:"stock" binding:"omitempty,min=0"`
	Variants      *[]VariantInput `json:"variants"`
	Status        *string         `json:"status" binding:"omitempty,oneof=active inactive"`
}

// PreviewVariantsInput carries the axes chosen on the product form. When a
// product id is supplied its stored combinations seed the merge, so
// already-entered price/stock/sku survive axis changes.
type PreviewVariantsInput struct {
	ProductID *uuid.UUID               `json:"productId"`
	Axes      []services.AttributeAxis `json:"axes" binding:"required"`
}

// CreateProduct creates a new product, with its variant grid when the
// product has variations
func CreateProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		ID:            uuid.New(),
		SalonID:       salonUUID,
		ProductName:   input.ProductName,
		Description:   input.Description,
		HasVariations: input.HasVariations,
		Price:         input.Price,
		Stock:         input.Stock,
		Status:        "active",
	}

	if input.HasVariations {
		for _, v := range input.Variants {
			product.Variants = append(product.Variants, models.ProductVariant{
				ProductID:   product.ID,
				Combination: v.Combination,
				Price:       v.Price,
				Stock:       v.Stock,
				SKU:         v.SKU,
				Code:        v.Code,
			})
		}
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves all products for the salon, variants included
func GetProducts(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := config.DB.Preload("Variants").
		Where("salon_id = ?", salonUUID).
		Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.Preload("Variants").
		Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// PreviewVariants regenerates the variant combination grid from the
// submitted axes without persisting anything. Stored combinations of the
// referenced product are merged in by structural equality.
func PreviewVariants(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input PreviewVariantsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var previous []models.ProductVariant
	if input.ProductID != nil {
		var product models.Product
		if err := config.DB.Preload("Variants").
			Where("salon_id = ? AND id = ?", salonUUID, *input.ProductID).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Product not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		previous = product.Variants
	}

	combinations := services.CombineVariants(input.Axes, previous)

	c.JSON(http.StatusOK, gin.H{"variants": combinations})
}

// UpdateProduct updates an existing product. When variants are supplied
// the stored grid is replaced wholesale with the submitted one.
func UpdateProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var product models.Product
	if err := tx.Preload("Variants").
		Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ProductName != nil {
		product.ProductName = *input.ProductName
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.HasVariations != nil {
		product.HasVariations = *input.HasVariations
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if input.Variants != nil {
		// Replace the variant grid
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&models.ProductVariant{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing variants")
			return
		}

		var newVariants []models.ProductVariant
		for _, v := range *input.Variants {
			newVariants = append(newVariants, models.ProductVariant{
				ProductID:   product.ID,
				Combination: v.Combination,
				Price:       v.Price,
				Stock:       v.Stock,
				SKU:         v.SKU,
				Code:        v.Code,
			})
		}
		product.Variants = newVariants
	}

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, product)
}

// DeleteProduct soft deletes a product and its variants
func DeleteProduct(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	productUUID, ok := parseIDParam(c)
	if !ok {
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var product models.Product
	if err := tx.Where("salon_id = ? AND id = ?", salonUUID, productUUID).
		First(&product).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("product_id = ?", product.ID).
		Delete(&models.ProductVariant{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product variants")
		return
	}

	if err := tx.Delete(&product).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
