package handlers

import (
	"gramconnect/internal/middleware"
	"gramconnect/internal/repositories"
	"gramconnect/internal/services"
	"gramconnect/internal/services/dto"
	"gramconnect/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
	uploadService  services.UploadService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService, uploadService services.UploadService) *ProductHandler {
	return &ProductHandler{BaseHandler: base, productService: productService, uploadService: uploadService}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	market := rg.Group("/marketplace")
	{
		market.GET("", h.List)
		market.GET("/new", middleware.LoginRequired(), h.NewForm)
		market.POST("/new", middleware.LoginRequired(), h.Create)
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	products, err := h.productService.List(h.GetDB(c), repositories.ProductFilter{
		Category: category,
		Search:   search,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RenderPage(c, "marketplace", gin.H{
		"products":          products,
		"selected_category": category,
		"search_query":      search,
	})
}

func (h *ProductHandler) NewForm(c *gin.Context) {
	h.RenderPage(c, "new_product", gin.H{})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var form dto.NewProductForm
	if !h.BindForm(c, &form) {
		return
	}
	if errs := h.ValidateForm(c, &form); errs != nil {
		h.RenderForm(c, "new_product", "Product name, price and contact information are required!", errs, form)
		return
	}

	image, appErr := saveOptionalImage(c, h.uploadService, "image", "product")
	if appErr != nil {
		if appErr.Code == apperrors.CodeValidationFailed {
			h.RenderForm(c, "new_product", appErr.Message, nil, form)
			return
		}
		h.Flash(c, "Could not save the image, the product was listed without it.")
	}

	userID, _ := middleware.CurrentUserID(c)
	if _, err := h.productService.Create(h.GetDB(c), userID, &form, image); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RedirectWithFlash(c, "/marketplace", "Product listed successfully!")
}
