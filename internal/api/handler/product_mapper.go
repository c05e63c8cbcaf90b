package handler

import (
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProductInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Region:       req.Region,
		State:        req.State,
		City:         req.City,
		Images:       toImageInputs(req.Images),
		ContactEmail: req.ContactEmail,
	}
}

func toUpdateProductInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Region:       req.Region,
		State:        req.State,
		City:         req.City,
		Images:       toImageInputs(req.Images),
		ContactEmail: req.ContactEmail,
		IsActive:     req.IsActive,
	}
}

func toImageInputs(images []imageRequest) []ports.ImageInput {
	if len(images) == 0 {
		return nil
	}
	out := make([]ports.ImageInput, 0, len(images))
	for _, img := range images {
		out = append(out, ports.ImageInput{URL: img.URL, ExternalID: img.ExternalID})
	}
	return out
}
